// Package task defines the task entity and the store contract the client consumes.
package task

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrEmptyDescription is returned when a description is blank after trimming.
	ErrEmptyDescription = errors.New("task description is empty")
)

// Task is a single text task. Ids are issued by the store and never reused.
type Task struct {
	ID          uint64 `json:"id"`
	Description string `json:"description"`
}

// Service is the task store contract.
// Implementations are the SQLite-backed service, the RPC client and test fakes.
type Service interface {
	// AddTask stores a new task and returns its assigned id.
	AddTask(ctx context.Context, description string) (uint64, error)

	// GetTask returns the task with the given id or ErrNotFound.
	GetTask(ctx context.Context, id uint64) (Task, error)

	// ListTasks returns every task. No pagination.
	ListTasks(ctx context.Context) ([]Task, error)
}

// ValidateDescription trims s and rejects blank input.
func ValidateDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyDescription
	}
	return s, nil
}
