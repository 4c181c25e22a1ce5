package task

import (
	"context"

	"lunchbox-ai/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// CreatePlan turns a natural language request into a structured task plan
	// with category, priority, due date, and step-by-step guidance.
	CreatePlan(ctx context.Context, sc model.Scope, input CreatePlanInput) (CreatePlanOutput, error)

	// List returns the user's tasks, optionally filtered by status.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns a single task by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// Delete permanently removes a task.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// NextStep returns the first uncompleted step of a task.
	NextStep(ctx context.Context, sc model.Scope, id string) (NextStepOutput, error)

	// CompleteStep marks the current step done, advances progress, and awards XP.
	CompleteStep(ctx context.Context, sc model.Scope, id string) (CompleteStepOutput, error)

	// CompleteTask marks the whole task completed regardless of remaining steps.
	CompleteTask(ctx context.Context, sc model.Scope, id string) (CompleteTaskOutput, error)

	// Motivation generates an encouraging message for a task in progress.
	Motivation(ctx context.Context, sc model.Scope, id string) (MotivationOutput, error)

	// Stats returns the user's gamification stats.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)

	// ExportCalendar renders the user's dated tasks as an iCalendar document.
	ExportCalendar(ctx context.Context, sc model.Scope) (string, error)
}
