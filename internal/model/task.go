package model

import "time"

// Category is one of the four fixed lunchbox buckets.
type Category string

const (
	CategorySweet   Category = "Sweet"   // fun / creative
	CategoryVeggies Category = "Veggies" // learning / study
	CategorySavory  Category = "Savory"  // important / urgent
	CategorySides   Category = "Sides"   // quick / misc
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// CompletionStep is one ordered unit of a task's plan.
type CompletionStep struct {
	StepNumber    int    `json:"step_number"`
	Description   string `json:"description"`
	EstimatedTime int    `json:"estimated_time"` // minutes
	Completed     bool   `json:"completed"`
}

// AIGuidance is the auxiliary bag persisted alongside a task plan. It keeps
// the raw extraction results for downstream display (calendar descriptions,
// step detail views).
type AIGuidance struct {
	Steps            []string `json:"steps"`
	TimeEstimates    []int    `json:"time_estimates"` // minutes, positional
	Tips             []string `json:"tips"`
	DueIsAllDay      bool     `json:"due_is_all_day"`
	OriginalResponse string   `json:"original_response"`
}

// Task is a persisted task plan.
type Task struct {
	ID                 string
	UserID             string
	Title              string
	Description        string // raw LLM narrative, stored verbatim
	Category           Category
	Priority           int // 1-5
	EstimatedDuration  int // minutes, always >= 15
	DueDate            *time.Time
	Status             TaskStatus
	CurrentStep        int
	ProgressPercentage int
	CompletionSteps    []CompletionStep
	AIGuidance         AIGuidance
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CompletedAt        *time.Time
}

// TotalSteps returns the number of completion steps.
func (t Task) TotalSteps() int {
	return len(t.CompletionSteps)
}
