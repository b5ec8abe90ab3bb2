package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"tido/internal/task"
)

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
    id        TEXT PRIMARY KEY,
    title     TEXT NOT NULL,
    completed BOOLEAN NOT NULL,
    position  INTEGER NOT NULL
);`

// PostgresStore persists task snapshots in a single Postgres table.
// Save replaces all rows transactionally; Load reads them back in
// insertion order. Zero rows reads as "nothing stored", matching the
// memory variant's quirk for saved-but-empty snapshots.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the given DSN, verifies the connection,
// and ensures the snapshot table exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTasksTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tasks table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Save replaces the stored snapshot with the given one in a single
// transaction, so a failed save leaves the previous snapshot intact.
func (s *PostgresStore) Save(ctx context.Context, tasks []task.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	const insert = `INSERT INTO tasks (id, title, completed, position) VALUES ($1, $2, $3, $4)`
	for i, t := range tasks {
		if _, err := tx.ExecContext(ctx, insert, t.ID, t.Title, t.Completed, i); err != nil {
			return fmt.Errorf("inserting task %s: %w", t.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot in position order.
func (s *PostgresStore) Load(ctx context.Context) ([]task.Task, bool, error) {
	const q = `SELECT id, title, completed FROM tasks ORDER BY position`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, false, fmt.Errorf("querying snapshot: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, false, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("reading snapshot rows: %w", err)
	}
	if len(tasks) == 0 {
		return nil, false, nil
	}
	return tasks, true, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
