package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"lunchbox-ai/internal/task/repository"
	"lunchbox-ai/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                  TEXT PRIMARY KEY,
	user_id             TEXT NOT NULL,
	title               TEXT NOT NULL,
	description         TEXT,
	category            TEXT NOT NULL,
	priority            INTEGER DEFAULT 1,
	estimated_duration  INTEGER DEFAULT 60,
	due_date            DATETIME,
	status              TEXT NOT NULL DEFAULT 'pending',
	current_step        INTEGER DEFAULT 0,
	progress_percentage INTEGER DEFAULT 0,
	completion_steps    TEXT NOT NULL DEFAULT '[]',
	ai_guidance         TEXT NOT NULL DEFAULT '{}',
	created_at          DATETIME NOT NULL,
	updated_at          DATETIME NOT NULL,
	completed_at        DATETIME
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks (user_id, status);

CREATE TABLE IF NOT EXISTS users (
	id                    TEXT PRIMARY KEY,
	username              TEXT NOT NULL,
	xp                    INTEGER DEFAULT 0,
	level                 INTEGER DEFAULT 1,
	streak_count          INTEGER DEFAULT 0,
	total_tasks_completed INTEGER DEFAULT 0,
	last_activity         DATETIME
);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (and bootstraps) the SQLite database at the given path.
// Use ":memory:" for an in-memory database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// modernc.org/sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent use.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: bootstrap schema: %w", err)
	}

	return db, nil
}

// New creates a SQLite-backed task and user repository.
func New(db *sql.DB, l log.Logger) interface {
	repository.TaskRepository
	repository.UserRepository
} {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
