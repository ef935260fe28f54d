package repository

import "time"

// TaskRow represents a tasks row.
type TaskRow struct {
	ID          uint64
	Description string
	CreatedAt   time.Time
}
