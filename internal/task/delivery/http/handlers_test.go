package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lunchbox-ai/config"
	"lunchbox-ai/internal/middleware"
	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockUseCase records the scope it was called with and returns canned values.
type mockUseCase struct {
	lastScope model.Scope
	planErr   error
	detailErr error
}

func (m *mockUseCase) CreatePlan(ctx context.Context, sc model.Scope, input task.CreatePlanInput) (task.CreatePlanOutput, error) {
	m.lastScope = sc
	if m.planErr != nil {
		return task.CreatePlanOutput{}, m.planErr
	}
	return task.CreatePlanOutput{Task: model.Task{ID: "task-1", Title: "Clean My Desk", Category: model.CategorySides, Status: model.StatusPending}}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.lastScope = sc
	return task.ListOutput{Tasks: []model.Task{{ID: "task-1"}}, Total: 1, Limit: 20}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	m.lastScope = sc
	if m.detailErr != nil {
		return task.DetailOutput{}, m.detailErr
	}
	return task.DetailOutput{Task: model.Task{ID: id}}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	m.lastScope = sc
	return nil
}

func (m *mockUseCase) NextStep(ctx context.Context, sc model.Scope, id string) (task.NextStepOutput, error) {
	return task.NextStepOutput{StepNumber: 1, TotalSteps: 2, Progress: 50, Message: "📋 Step 1 of 2: start"}, nil
}

func (m *mockUseCase) CompleteStep(ctx context.Context, sc model.Scope, id string) (task.CompleteStepOutput, error) {
	return task.CompleteStepOutput{Task: model.Task{ID: id}, XPGained: 10}, nil
}

func (m *mockUseCase) CompleteTask(ctx context.Context, sc model.Scope, id string) (task.CompleteTaskOutput, error) {
	return task.CompleteTaskOutput{Task: model.Task{ID: id}, XPGained: 10, Message: "done"}, nil
}

func (m *mockUseCase) Motivation(ctx context.Context, sc model.Scope, id string) (task.MotivationOutput, error) {
	return task.MotivationOutput{Message: "keep going"}, nil
}

func (m *mockUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	m.lastScope = sc
	return task.StatsOutput{XP: 10, Level: 1}, nil
}

func (m *mockUseCase) ExportCalendar(ctx context.Context, sc model.Scope) (string, error) {
	return "BEGIN:VCALENDAR\r\nEND:VCALENDAR", nil
}

func newTestRouter(uc task.UseCase, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, cfg)
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc), mw)
	return r
}

func testConfig() *config.Config {
	return &config.Config{Auth: config.AuthConfig{RateLimitPerMin: 600}}
}

func TestCreatePlanHandler(t *testing.T) {
	t.Run("returns the created plan", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc, testConfig())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/plan", strings.NewReader(`{"input":"clean my desk"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if uc.lastScope.UserID != "user-1" {
			t.Errorf("scope user = %q, want user-1", uc.lastScope.UserID)
		}

		var body struct {
			Data createPlanResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.Data.Task.Title != "Clean My Desk" {
			t.Errorf("task title = %q", body.Data.Task.Title)
		}
	})

	t.Run("missing input is a 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, testConfig())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/plan", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("generation failure maps to 502", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{planErr: task.ErrGenerationFailed}, testConfig())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/plan", strings.NewReader(`{"input":"clean my desk"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("status = %d, want 502", w.Code)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	t.Run("unknown task maps to 404", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{detailErr: task.ErrTaskNotFound}, testConfig())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("defaults the scope when no user header is sent", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc, testConfig())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/task-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if uc.lastScope.UserID == "" {
			t.Error("scope user is empty, want default user")
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.APIKey = "secret"
	r := newTestRouter(&mockUseCase{}, cfg)

	t.Run("rejects a missing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("accepts the configured key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		req.Header.Set("X-API-Key", "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})
}

func TestExportCalendarHandler(t *testing.T) {
	r := newTestRouter(&mockUseCase{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type = %q, want text/calendar", ct)
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Error("body missing VCALENDAR envelope")
	}
}
