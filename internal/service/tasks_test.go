package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/icbutler/internal/database"
	"github.com/jask/icbutler/internal/database/repository"
	"github.com/jask/icbutler/internal/task"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenAndMigrate(database.DriverCGO, filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestTaskServiceRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	svc := NewTaskService(repository.NewTaskRepo(newTestDB(t)), nil)

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)

	id, err := svc.AddTask(ctx, "  buy milk ")
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := svc.GetTask(ctx, id)
	require.NoError(t, err)
	require.Equal(t, task.Task{ID: id, Description: "buy milk"}, got)

	tasks, err = svc.ListTasks(ctx)
	require.NoError(t, err)
	require.Equal(t, []task.Task{{ID: id, Description: "buy milk"}}, tasks)
}

func TestTaskServiceErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewTaskService(repository.NewTaskRepo(newTestDB(t)), nil)

	_, err := svc.AddTask(ctx, "   ")
	require.ErrorIs(t, err, task.ErrEmptyDescription)

	_, err = svc.GetTask(ctx, 999999)
	require.ErrorIs(t, err, task.ErrNotFound)
}

func TestTaskServiceIDsAreMonotonic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	svc := NewTaskService(repository.NewTaskRepo(db), nil)

	first, err := svc.AddTask(ctx, "one")
	require.NoError(t, err)

	// Ids are never reused, even after the store is wiped.
	require.NoError(t, (&MaintenanceService{DB: db}).Reset(ctx))
	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)

	second, err := svc.AddTask(ctx, "two")
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestMaintenanceResetWithoutDB(t *testing.T) {
	err := (&MaintenanceService{}).Reset(context.Background())
	require.Error(t, err)
}
