package http

import (
	"time"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/task"
)

// --- Request DTOs ---

type createPlanReq struct {
	Input string `json:"input" binding:"required,min=1,max=2000"`
}

func (r createPlanReq) validate() error { return nil }

func (r createPlanReq) toInput() task.CreatePlanInput {
	return task.CreatePlanInput{Input: r.Input}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status: r.Status,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type stepResp struct {
	StepNumber    int    `json:"step_number"`
	Description   string `json:"description"`
	EstimatedTime int    `json:"estimated_time"`
	Completed     bool   `json:"completed"`
}

func newStepResp(s model.CompletionStep) stepResp {
	return stepResp{
		StepNumber:    s.StepNumber,
		Description:   s.Description,
		EstimatedTime: s.EstimatedTime,
		Completed:     s.Completed,
	}
}

type taskResp struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	Priority           int        `json:"priority"`
	EstimatedDuration  int        `json:"estimated_duration"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	Status             string     `json:"status"`
	CurrentStep        int        `json:"current_step"`
	ProgressPercentage int        `json:"progress_percentage"`
	Steps              []stepResp `json:"steps"`
	Tips               []string   `json:"tips,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	steps := make([]stepResp, len(t.CompletionSteps))
	for i, s := range t.CompletionSteps {
		steps[i] = newStepResp(s)
	}
	return taskResp{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		Category:           string(t.Category),
		Priority:           t.Priority,
		EstimatedDuration:  t.EstimatedDuration,
		DueDate:            t.DueDate,
		Status:             string(t.Status),
		CurrentStep:        t.CurrentStep,
		ProgressPercentage: t.ProgressPercentage,
		Steps:              steps,
		Tips:               t.AIGuidance.Tips,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
		CompletedAt:        t.CompletedAt,
	}
}

type createPlanResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreatePlanResp(out task.CreatePlanOutput) createPlanResp {
	return createPlanResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type nextStepResp struct {
	Step       *stepResp `json:"step,omitempty"`
	StepNumber int       `json:"step_number,omitempty"`
	TotalSteps int       `json:"total_steps,omitempty"`
	Progress   int       `json:"progress"`
	Message    string    `json:"message"`
	Completed  bool      `json:"completed"`
}

func (h *handler) newNextStepResp(out task.NextStepOutput) nextStepResp {
	resp := nextStepResp{
		StepNumber: out.StepNumber,
		TotalSteps: out.TotalSteps,
		Progress:   out.Progress,
		Message:    out.Message,
		Completed:  out.Completed,
	}
	if out.Step != nil {
		s := newStepResp(*out.Step)
		resp.Step = &s
	}
	return resp
}

type completeStepResp struct {
	Task      taskResp `json:"task"`
	XPGained  int      `json:"xp_gained"`
	Completed bool     `json:"completed"`
}

func (h *handler) newCompleteStepResp(out task.CompleteStepOutput) completeStepResp {
	return completeStepResp{
		Task:      newTaskResp(out.Task),
		XPGained:  out.XPGained,
		Completed: out.Completed,
	}
}

type completeTaskResp struct {
	Task     taskResp `json:"task"`
	XPGained int      `json:"xp_gained"`
	Message  string   `json:"message"`
}

func (h *handler) newCompleteTaskResp(out task.CompleteTaskOutput) completeTaskResp {
	return completeTaskResp{
		Task:     newTaskResp(out.Task),
		XPGained: out.XPGained,
		Message:  out.Message,
	}
}

type motivationResp struct {
	Message string `json:"message"`
}

func (h *handler) newMotivationResp(out task.MotivationOutput) motivationResp {
	return motivationResp{Message: out.Message}
}

type statsResp struct {
	XP                  int `json:"xp"`
	Level               int `json:"level"`
	StreakCount         int `json:"streak_count"`
	TotalTasksCompleted int `json:"total_tasks_completed"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		XP:                  out.XP,
		Level:               out.Level,
		StreakCount:         out.StreakCount,
		TotalTasksCompleted: out.TotalTasksCompleted,
	}
}
