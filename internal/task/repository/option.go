package repository

import (
	"time"

	"lunchbox-ai/internal/model"
)

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	UserID            string
	Title             string
	Description       string
	Category          model.Category
	Priority          int
	EstimatedDuration int
	DueDate           *time.Time
	CompletionSteps   []model.CompletionStep
	AIGuidance        model.AIGuidance
}

// GetOneTaskOptions holds filters for fetching a single task (AND condition).
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	UserID string
	Status model.TaskStatus // empty means all statuses
	Limit  int              // default 20
	Offset int
}

// UpdateTaskProgressOptions holds the mutable progress fields of a task.
// Nil pointers leave the column unchanged.
type UpdateTaskProgressOptions struct {
	ID                 string
	CurrentStep        *int
	ProgressPercentage *int
	Status             *model.TaskStatus
	CompletionSteps    []model.CompletionStep
	CompletedAt        *time.Time
}

// GetOrCreateUserOptions identifies a user row.
type GetOrCreateUserOptions struct {
	UserID   string
	Username string
}
