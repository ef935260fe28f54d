package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoRow is returned by Get when the id is unknown.
var ErrNoRow = errors.New("no such row")

// TaskRepo handles tasks.
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{db: db} }

// Insert stores a task and returns the id sqlite assigned to it.
func (r *TaskRepo) Insert(ctx context.Context, description string, createdAt time.Time) (uint64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO tasks(description, created_at) VALUES (?, ?)`, description, createdAt.Unix())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return uint64(id), nil
}

func (r *TaskRepo) Get(ctx context.Context, id uint64) (TaskRow, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, description, created_at FROM tasks WHERE id = ?`, int64(id))
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return TaskRow{}, ErrNoRow
	}
	return t, err
}

// List returns every task ordered by id.
func (r *TaskRepo) List(ctx context.Context) ([]TaskRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, description, created_at FROM tasks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TaskRow
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (TaskRow, error) {
	var (
		t       TaskRow
		id      int64
		created int64
	)
	if err := s.Scan(&id, &t.Description, &created); err != nil {
		return TaskRow{}, err
	}
	t.ID = uint64(id)
	t.CreatedAt = time.Unix(created, 0).UTC()
	return t, nil
}
