package core

import "github.com/jask/icbutler/internal/task"

// StatusMsg replaces the status bar text.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// NavigatedMsg carries the result of a navigation fetch back to the UI loop.
type NavigatedMsg struct {
	Gen    uint64
	Target PageState
	Tasks  []task.Task
	Task   task.Task
	Err    error
}

// TaskCreatedMsg carries the result of an add back to the UI loop.
type TaskCreatedMsg struct {
	Gen         uint64
	ID          uint64
	Description string
	Err         error
}
