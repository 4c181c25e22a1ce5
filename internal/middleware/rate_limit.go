package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"lunchbox-ai/pkg/response"
)

// RateLimit throttles requests per user. Limiters live in an expiring LRU so
// idle users do not accumulate.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.config.Auth.RateLimitPerMin
	if perMin <= 0 {
		perMin = 60
	}
	limit := rate.Limit(float64(perMin) / 60.0)
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return func(c *gin.Context) {
		key := c.GetHeader(headerUserID)
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
