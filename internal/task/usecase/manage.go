package usecase

import (
	"context"
	"fmt"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/task"
	"lunchbox-ai/internal/task/repository"
)

// List returns the user's tasks ordered by priority, due date, and recency.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		Status: model.TaskStatus(input.Status),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Detail returns a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getScopedTask(ctx, sc, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Delete permanently removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	t, err := uc.getScopedTask(ctx, sc, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, t.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	uc.l.Infof(ctx, "Delete: removed task %s for user %s", t.ID, sc.UserID)
	return nil
}

// Stats returns the user's gamification stats.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	user, err := uc.userRepo.GetOrCreateUser(ctx, repository.GetOrCreateUserOptions{
		UserID:   sc.UserID,
		Username: sc.Username,
	})
	if err != nil {
		return task.StatsOutput{}, fmt.Errorf("failed to load user: %w", err)
	}

	return task.StatsOutput{
		XP:                  user.XP,
		Level:               user.Level,
		StreakCount:         user.StreakCount,
		TotalTasksCompleted: user.TotalTasksCompleted,
	}, nil
}
