package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/narrative"
	"lunchbox-ai/internal/task/repository"
	"lunchbox-ai/pkg/datemath"
	"lunchbox-ai/pkg/llmprovider"
)

// Mock logger for testing
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

// stubProvider returns a fixed narrative (or error) for every request.
type stubProvider struct {
	text string
	err  error
}

func (p *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Text:         p.text,
		ProviderName: "stub",
		ModelName:    "stub-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (p *stubProvider) Name() string  { return "stub" }
func (p *stubProvider) Model() string { return "stub-model" }

// managerWithText builds a single-provider Manager for tests.
func managerWithText(text string) *llmprovider.Manager {
	return llmprovider.NewManager(
		[]llmprovider.Provider{&stubProvider{text: text}},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
		&mockLogger{},
	)
}

func managerWithError() *llmprovider.Manager {
	return llmprovider.NewManager(
		[]llmprovider.Provider{&stubProvider{err: errors.New("provider down")}},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
		&mockLogger{},
	)
}

// memTaskRepo is an in-memory TaskRepository.
type memTaskRepo struct {
	tasks  map[string]model.Task
	nextID int
	fail   bool
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[string]model.Task)}
}

func (r *memTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if r.fail {
		return model.Task{}, repository.ErrFailedToInsert
	}
	r.nextID++
	now := time.Now().UTC()
	t := model.Task{
		ID:                fmt.Sprintf("task-%d", r.nextID),
		UserID:            opt.UserID,
		Title:             opt.Title,
		Description:       opt.Description,
		Category:          opt.Category,
		Priority:          opt.Priority,
		EstimatedDuration: opt.EstimatedDuration,
		DueDate:           opt.DueDate,
		Status:            model.StatusPending,
		CompletionSteps:   opt.CompletionSteps,
		AIGuidance:        opt.AIGuidance,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if r.fail {
		return model.Task{}, repository.ErrFailedToGet
	}
	t, ok := r.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (r *memTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if r.fail {
		return nil, 0, repository.ErrFailedToList
	}
	var out []model.Task
	for _, t := range r.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (r *memTaskRepo) UpdateTaskProgress(ctx context.Context, opt repository.UpdateTaskProgressOptions) (model.Task, error) {
	if r.fail {
		return model.Task{}, repository.ErrFailedToUpdate
	}
	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.CurrentStep != nil {
		t.CurrentStep = *opt.CurrentStep
	}
	if opt.ProgressPercentage != nil {
		t.ProgressPercentage = *opt.ProgressPercentage
	}
	if opt.Status != nil {
		t.Status = *opt.Status
	}
	if opt.CompletionSteps != nil {
		t.CompletionSteps = opt.CompletionSteps
	}
	if opt.CompletedAt != nil {
		t.CompletedAt = opt.CompletedAt
	}
	t.UpdatedAt = time.Now().UTC()
	r.tasks[opt.ID] = t
	return t, nil
}

func (r *memTaskRepo) DeleteTask(ctx context.Context, id string) error {
	if r.fail {
		return repository.ErrFailedToDelete
	}
	delete(r.tasks, id)
	return nil
}

// memUserRepo is an in-memory UserRepository.
type memUserRepo struct {
	users map[string]model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]model.User)}
}

func (r *memUserRepo) GetOrCreateUser(ctx context.Context, opt repository.GetOrCreateUserOptions) (model.User, error) {
	if u, ok := r.users[opt.UserID]; ok {
		return u, nil
	}
	u := model.User{ID: opt.UserID, Username: opt.Username, Level: 1}
	r.users[opt.UserID] = u
	return u, nil
}

func (r *memUserRepo) AddUserXP(ctx context.Context, userID string, xpGained int) (model.User, error) {
	u := r.users[userID]
	u.XP += xpGained
	u.Level = model.LevelForXP(u.XP)
	r.users[userID] = u
	return u, nil
}

func (r *memUserRepo) IncrementTasksCompleted(ctx context.Context, userID string) (model.User, error) {
	u := r.users[userID]
	u.TotalTasksCompleted++
	u.StreakCount++
	r.users[userID] = u
	return u, nil
}

// newTestUseCase wires an in-memory use case around the given LLM manager.
func newTestUseCase(llm *llmprovider.Manager) (*implUseCase, *memTaskRepo, *memUserRepo) {
	taskRepo := newMemTaskRepo()
	userRepo := newMemUserRepo()
	dm, _ := datemath.NewParser("UTC")
	uc := New(&mockLogger{}, llm, narrative.New(), dm, taskRepo, userRepo, nil, nil)
	return uc, taskRepo, userRepo
}
