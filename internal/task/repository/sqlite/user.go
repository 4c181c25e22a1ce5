package sqlite

import (
	"context"
	"database/sql"
	"time"

	"lunchbox-ai/internal/model"
	repo "lunchbox-ai/internal/task/repository"
)

// GetOrCreateUser returns the user row, creating it on first sight.
func (r *implRepository) GetOrCreateUser(ctx context.Context, opt repo.GetOrCreateUserOptions) (model.User, error) {
	u, err := r.getUser(ctx, opt.UserID)
	if err != nil {
		return model.User{}, err
	}
	if u.ID != "" {
		return u, nil
	}

	now := time.Now().UTC()
	u = model.User{
		ID:           opt.UserID,
		Username:     opt.Username,
		XP:           0,
		Level:        1,
		LastActivity: &now,
	}

	const query = `
		INSERT INTO users (id, username, xp, level, streak_count, total_tasks_completed, last_activity)
		VALUES (?, ?, 0, 1, 0, 0, ?)`
	if _, err := r.db.ExecContext(ctx, query, u.ID, u.Username, now); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrCreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// AddUserXP adds XP to the user, recomputes the level, and bumps last_activity.
func (r *implRepository) AddUserXP(ctx context.Context, userID string, xpGained int) (model.User, error) {
	u, err := r.getUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, repo.ErrFailedToGet
	}

	newXP := u.XP + xpGained
	newLevel := model.LevelForXP(newXP)
	now := time.Now().UTC()

	const query = `UPDATE users SET xp = ?, level = ?, last_activity = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, newXP, newLevel, now, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddUserXP"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}

	u.XP = newXP
	u.Level = newLevel
	u.LastActivity = &now
	return u, nil
}

// IncrementTasksCompleted bumps the completed-task counter and the streak.
func (r *implRepository) IncrementTasksCompleted(ctx context.Context, userID string) (model.User, error) {
	now := time.Now().UTC()

	const query = `
		UPDATE users
		SET total_tasks_completed = total_tasks_completed + 1,
			streak_count = streak_count + 1,
			last_activity = ?
		WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, now, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementTasksCompleted"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}

	return r.getUser(ctx, userID)
}

// getUser returns zero-value User (ID == "") when not found.
func (r *implRepository) getUser(ctx context.Context, userID string) (model.User, error) {
	const query = `
		SELECT id, username, xp, level, streak_count, total_tasks_completed, last_activity
		FROM users WHERE id = ? LIMIT 1`

	var (
		u            model.User
		lastActivity sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&u.ID, &u.Username, &u.XP, &u.Level, &u.StreakCount, &u.TotalTasksCompleted, &lastActivity,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("getUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	if lastActivity.Valid {
		la := lastActivity.Time
		u.LastActivity = &la
	}
	return u, nil
}
