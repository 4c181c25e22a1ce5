package middleware

import (
	"github.com/gin-gonic/gin"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/pkg/response"
)

const (
	scopeKey = "scope"

	headerAPIKey   = "X-API-Key"
	headerUserID   = "X-User-ID"
	headerUsername = "X-Username"

	// defaultUserID identifies requests that carry no user header. Single
	// user installs never need to send one.
	defaultUserID = "default-user"
)

// Auth validates the API key (when one is configured) and injects the
// request scope into the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := m.config.Auth.APIKey; key != "" {
			if c.GetHeader(headerAPIKey) != key {
				m.l.Warnf(c.Request.Context(), "auth: invalid API key from %s", c.ClientIP())
				response.Unauthorized(c)
				c.Abort()
				return
			}
		}

		sc := model.Scope{
			UserID:   c.GetHeader(headerUserID),
			Username: c.GetHeader(headerUsername),
		}
		if sc.UserID == "" {
			sc.UserID = defaultUserID
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the scope injected by Auth. Handlers behind the
// Auth middleware can rely on a non-empty UserID.
func ScopeFromContext(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{UserID: defaultUserID}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{UserID: defaultUserID}
	}
	return sc
}
