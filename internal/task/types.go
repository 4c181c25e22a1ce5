package task

import "lunchbox-ai/internal/model"

// CreatePlanInput is the input for task plan creation.
// UserID is stored in model.Scope, not here.
type CreatePlanInput struct {
	Input string // Natural language task description from the user
}

// CreatePlanOutput is the result of task plan creation.
type CreatePlanOutput struct {
	Task model.Task
}

// ListInput is the input for listing tasks.
type ListInput struct {
	Status string // Filter by status (optional)
	Limit  int    // Max results (default 20)
	Offset int    // Pagination offset
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// DetailOutput is the result of fetching a single task.
type DetailOutput struct {
	Task model.Task
}

// NextStepOutput is the result of the next-step lookup.
type NextStepOutput struct {
	Step       *model.CompletionStep // nil when all steps are done
	StepNumber int
	TotalSteps int
	Progress   int
	Message    string
	Completed  bool
}

// CompleteStepOutput is the result of completing a step.
type CompleteStepOutput struct {
	Task      model.Task
	XPGained  int
	Completed bool // true when this was the last step
}

// CompleteTaskOutput is the result of completing a whole task.
type CompleteTaskOutput struct {
	Task     model.Task
	XPGained int
	Message  string
}

// MotivationOutput is the result of motivation generation.
type MotivationOutput struct {
	Message string
}

// StatsOutput is the user's gamification stats.
type StatsOutput struct {
	XP                  int
	Level               int
	StreakCount         int
	TotalTasksCompleted int
}
