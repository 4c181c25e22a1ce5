package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lunchbox-ai/internal/model"
	repo "lunchbox-ai/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, category, priority, estimated_duration,
	due_date, status, current_step, progress_percentage, completion_steps, ai_guidance,
	created_at, updated_at, completed_at`

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	stepsJSON, err := json.Marshal(opt.CompletionSteps)
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal steps: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	guidanceJSON, err := json.Marshal(opt.AIGuidance)
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal guidance: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	now := time.Now().UTC()
	t := model.Task{
		ID:                uuid.NewString(),
		UserID:            opt.UserID,
		Title:             opt.Title,
		Description:       opt.Description,
		Category:          opt.Category,
		Priority:          opt.Priority,
		EstimatedDuration: opt.EstimatedDuration,
		DueDate:           opt.DueDate,
		Status:            model.StatusPending,
		CompletionSteps:   opt.CompletionSteps,
		AIGuidance:        opt.AIGuidance,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	const query = `
		INSERT INTO tasks (id, user_id, title, description, category, priority, estimated_duration,
			due_date, status, current_step, progress_percentage, completion_steps, ai_guidance,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, string(t.Category), t.Priority, t.EstimatedDuration,
		nullableTime(t.DueDate), string(t.Status), string(stepsJSON), string(guidanceJSON),
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var conds []string
	var args []any
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if len(conds) == 0 {
		return model.Task{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, strings.Join(conds, " AND "))

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks for a user ordered by priority desc, due date asc,
// creation time desc, plus the total count ignoring pagination.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(opt.Status))
	}
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(`
		SELECT %s FROM tasks WHERE %s
		ORDER BY priority DESC, due_date ASC, created_at DESC
		LIMIT ? OFFSET ?`, taskColumns, where)
	args = append(args, limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// UpdateTaskProgress updates the mutable progress fields and returns the
// updated entity. Returns zero-value Task when the row does not exist.
func (r *implRepository) UpdateTaskProgress(ctx context.Context, opt repo.UpdateTaskProgressOptions) (model.Task, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if opt.CurrentStep != nil {
		sets = append(sets, "current_step = ?")
		args = append(args, *opt.CurrentStep)
	}
	if opt.ProgressPercentage != nil {
		sets = append(sets, "progress_percentage = ?")
		args = append(args, *opt.ProgressPercentage)
	}
	if opt.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*opt.Status))
	}
	if opt.CompletionSteps != nil {
		stepsJSON, err := json.Marshal(opt.CompletionSteps)
		if err != nil {
			r.l.Errorf(ctx, "%s: marshal steps: %v", r.dsn("UpdateTaskProgress"), err)
			return model.Task{}, repo.ErrFailedToUpdate
		}
		sets = append(sets, "completion_steps = ?")
		args = append(args, string(stepsJSON))
	}
	if opt.CompletedAt != nil {
		sets = append(sets, "completed_at = ?")
		args = append(args, *opt.CompletedAt)
	}

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, opt.ID)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTaskProgress"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask removes a task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(row rowScanner) (model.Task, error) {
	var (
		t            model.Task
		category     string
		status       string
		dueDate      sql.NullTime
		completedAt  sql.NullTime
		description  sql.NullString
		stepsJSON    string
		guidanceJSON string
	)

	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &description, &category, &t.Priority, &t.EstimatedDuration,
		&dueDate, &status, &t.CurrentStep, &t.ProgressPercentage, &stepsJSON, &guidanceJSON,
		&t.CreatedAt, &t.UpdatedAt, &completedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Description = description.String
	t.Category = model.Category(category)
	t.Status = model.TaskStatus(status)
	if dueDate.Valid {
		d := dueDate.Time
		t.DueDate = &d
	}
	if completedAt.Valid {
		c := completedAt.Time
		t.CompletedAt = &c
	}
	if err := json.Unmarshal([]byte(stepsJSON), &t.CompletionSteps); err != nil {
		return model.Task{}, err
	}
	if err := json.Unmarshal([]byte(guidanceJSON), &t.AIGuidance); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
