package repository

import (
	"context"

	"lunchbox-ai/internal/model"
)

// TaskRepository is the interface for task data access operations.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// GetOneTask returns the zero-value Task (ID == "") when not found.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)

	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTaskProgress(ctx context.Context, opt UpdateTaskProgressOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// UserRepository is the interface for user data access operations.
type UserRepository interface {
	// GetOrCreateUser returns the user, creating the row on first sight.
	GetOrCreateUser(ctx context.Context, opt GetOrCreateUserOptions) (model.User, error)

	// AddUserXP adds XP, recomputes the level, and bumps last_activity.
	AddUserXP(ctx context.Context, userID string, xpGained int) (model.User, error)

	// IncrementTasksCompleted bumps the completed-task counter and streak.
	IncrementTasksCompleted(ctx context.Context, userID string) (model.User, error)
}
