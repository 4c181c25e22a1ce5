package usecase

import (
	"context"
	"fmt"
	"time"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/task"
	"lunchbox-ai/internal/task/repository"
)

// NextStep returns the first uncompleted step of a task.
func (uc *implUseCase) NextStep(ctx context.Context, sc model.Scope, id string) (task.NextStepOutput, error) {
	t, err := uc.getScopedTask(ctx, sc, id)
	if err != nil {
		return task.NextStepOutput{}, err
	}

	total := t.TotalSteps()
	if t.CurrentStep >= total {
		return task.NextStepOutput{
			Message:   "🎉 Congratulations! You've completed all steps for this task!",
			Completed: true,
		}, nil
	}

	step := t.CompletionSteps[t.CurrentStep]
	number := t.CurrentStep + 1

	return task.NextStepOutput{
		Step:       &step,
		StepNumber: number,
		TotalSteps: total,
		Progress:   progressFor(number, total),
		Message:    fmt.Sprintf("📋 Step %d of %d: %s", number, total, step.Description),
	}, nil
}

// CompleteStep advances the task by one step, persists progress, and awards
// XP. It is not idempotent: each call advances regardless of prior state.
func (uc *implUseCase) CompleteStep(ctx context.Context, sc model.Scope, id string) (task.CompleteStepOutput, error) {
	t, err := uc.getScopedTask(ctx, sc, id)
	if err != nil {
		return task.CompleteStepOutput{}, err
	}

	total := t.TotalSteps()
	newStep := t.CurrentStep + 1
	progress := progressFor(newStep, total)
	done := newStep >= total

	status := model.StatusInProgress
	if done {
		status = model.StatusCompleted
	}

	steps := t.CompletionSteps
	if t.CurrentStep < total {
		steps[t.CurrentStep].Completed = true
	}

	opt := repository.UpdateTaskProgressOptions{
		ID:                 t.ID,
		CurrentStep:        &newStep,
		ProgressPercentage: &progress,
		Status:             &status,
		CompletionSteps:    steps,
	}
	if done {
		now := time.Now().UTC()
		opt.CompletedAt = &now
	}

	updated, err := uc.repo.UpdateTaskProgress(ctx, opt)
	if err != nil {
		return task.CompleteStepOutput{}, fmt.Errorf("failed to update progress: %w", err)
	}

	xpGained := xpForDuration(t.EstimatedDuration)
	if _, err := uc.userRepo.AddUserXP(ctx, sc.UserID, xpGained); err != nil {
		uc.l.Errorf(ctx, "CompleteStep: XP update failed for user %s: %v", sc.UserID, err)
	}

	if done {
		if _, err := uc.userRepo.IncrementTasksCompleted(ctx, sc.UserID); err != nil {
			uc.l.Errorf(ctx, "CompleteStep: completion counter update failed: %v", err)
		}
		uc.notifyTaskCompleted(ctx, sc, updated, xpGained)
	}

	uc.l.Infof(ctx, "CompleteStep: task=%s step=%d/%d xp=%d", t.ID, newStep, total, xpGained)

	return task.CompleteStepOutput{
		Task:      updated,
		XPGained:  xpGained,
		Completed: done,
	}, nil
}

// CompleteTask marks the whole task completed regardless of remaining steps.
func (uc *implUseCase) CompleteTask(ctx context.Context, sc model.Scope, id string) (task.CompleteTaskOutput, error) {
	t, err := uc.getScopedTask(ctx, sc, id)
	if err != nil {
		return task.CompleteTaskOutput{}, err
	}

	status := model.StatusCompleted
	progress := 100
	now := time.Now().UTC()

	updated, err := uc.repo.UpdateTaskProgress(ctx, repository.UpdateTaskProgressOptions{
		ID:                 t.ID,
		Status:             &status,
		ProgressPercentage: &progress,
		CompletedAt:        &now,
	})
	if err != nil {
		return task.CompleteTaskOutput{}, fmt.Errorf("failed to complete task: %w", err)
	}

	xpGained := xpForDuration(t.EstimatedDuration)
	if _, err := uc.userRepo.AddUserXP(ctx, sc.UserID, xpGained); err != nil {
		uc.l.Errorf(ctx, "CompleteTask: XP update failed for user %s: %v", sc.UserID, err)
	}
	if _, err := uc.userRepo.IncrementTasksCompleted(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "CompleteTask: completion counter update failed: %v", err)
	}

	uc.notifyTaskCompleted(ctx, sc, updated, xpGained)

	return task.CompleteTaskOutput{
		Task:     updated,
		XPGained: xpGained,
		Message:  fmt.Sprintf("🎉 Great job! You've completed %q!", t.Title),
	}, nil
}

// getScopedTask loads a task that must belong to the scope's user.
func (uc *implUseCase) getScopedTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to load task: %w", err)
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
