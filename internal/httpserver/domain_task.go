package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"lunchbox-ai/internal/middleware"
	"lunchbox-ai/internal/narrative"
	taskHTTP "lunchbox-ai/internal/task/delivery/http"
	taskRepo "lunchbox-ai/internal/task/repository/sqlite"
	taskUC "lunchbox-ai/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository (serves both task and user storage)
	repo := taskRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, srv.llm, narrative.New(), srv.dateMath, repo, repo, srv.calendar, srv.notifier)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/tasks, /api/v1/stats, /api/v1/calendar/export
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
