package http

import (
	"github.com/gin-gonic/gin"

	"lunchbox-ai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route sits behind Auth and RateLimit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.POST("/plan", h.CreatePlan)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.DELETE("/:id", h.Delete)
		tasks.GET("/:id/next-step", h.NextStep)
		tasks.POST("/:id/complete-step", h.CompleteStep)
		tasks.POST("/:id/complete", h.CompleteTask)
		tasks.GET("/:id/motivation", h.Motivation)
	}

	rg.GET("/stats", mw.Auth(), mw.RateLimit(), h.Stats)
	rg.GET("/calendar/export", mw.Auth(), mw.RateLimit(), h.ExportCalendar)
}
