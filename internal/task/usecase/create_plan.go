package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/task"
	"lunchbox-ai/internal/task/repository"
	"lunchbox-ai/pkg/llmprovider"
)

// CreatePlan turns a natural language request into a persisted task plan.
func (uc *implUseCase) CreatePlan(ctx context.Context, sc model.Scope, input task.CreatePlanInput) (task.CreatePlanOutput, error) {
	if strings.TrimSpace(input.Input) == "" {
		return task.CreatePlanOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "CreatePlan: user=%s input_length=%d", sc.UserID, len(input.Input))

	user, err := uc.userRepo.GetOrCreateUser(ctx, repository.GetOrCreateUserOptions{
		UserID:   sc.UserID,
		Username: sc.Username,
	})
	if err != nil {
		return task.CreatePlanOutput{}, fmt.Errorf("failed to load user: %w", err)
	}

	// Recent tasks give the model context; failure here is not fatal.
	recent, _, listErr := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID, Limit: 3})
	if listErr != nil {
		uc.l.Warnf(ctx, "CreatePlan: recent task lookup failed (non-fatal): %v", listErr)
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemPrompt: systemPrompt + buildContextPrompt(user, recent),
		UserPrompt: fmt.Sprintf(
			"Help me create a task plan for: %q. Break it down into manageable steps with time estimates and helpful tips.",
			input.Input),
		Temperature: planTemperature,
		MaxTokens:   planMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "CreatePlan: LLM generation failed: %v", err)
		return task.CreatePlanOutput{}, fmt.Errorf("%w: %v", task.ErrGenerationFailed, err)
	}

	plan := uc.buildPlan(input.Input, resp.Text, time.Now())

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:            sc.UserID,
		Title:             plan.Title,
		Description:       plan.Description,
		Category:          plan.Category,
		Priority:          plan.Priority,
		EstimatedDuration: plan.EstimatedDuration,
		DueDate:           plan.DueDate,
		CompletionSteps:   plan.Steps,
		AIGuidance:        plan.Guidance,
	})
	if err != nil {
		return task.CreatePlanOutput{}, fmt.Errorf("failed to save task plan: %w", err)
	}

	uc.l.Infof(ctx, "CreatePlan: created task %q id=%s steps=%d category=%s",
		created.Title, created.ID, created.TotalSteps(), created.Category)

	// Calendar sync is best-effort; the plan is already saved.
	uc.tryCreateCalendarEvent(ctx, created)

	return task.CreatePlanOutput{Task: created}, nil
}
