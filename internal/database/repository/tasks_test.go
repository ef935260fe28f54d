package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/icbutler/internal/database"
	"github.com/jask/icbutler/internal/database/repository"
)

func TestTaskRepo(t *testing.T) {
	drivers := map[string]string{
		"mattn/go-sqlite3":  database.DriverCGO,
		"modernc.org/sqlite": database.DriverPure,
	}

	for name, driver := range drivers {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			db, err := database.OpenAndMigrate(driver, filepath.Join(t.TempDir(), "test.db"), nil)
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			repo := repository.NewTaskRepo(db)
			n, err := repo.Count(ctx)
			require.NoError(t, err)
			require.Zero(t, n)

			now := database.Now()
			id1, err := repo.Insert(ctx, "buy milk", now)
			require.NoError(t, err)
			id2, err := repo.Insert(ctx, "write report", now)
			require.NoError(t, err)
			assert.Greater(t, id2, id1)

			got, err := repo.Get(ctx, id1)
			require.NoError(t, err)
			assert.Equal(t, "buy milk", got.Description)
			assert.Equal(t, now, got.CreatedAt)

			_, err = repo.Get(ctx, 999999)
			assert.ErrorIs(t, err, repository.ErrNoRow)

			rows, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, rows, 2)
			assert.Equal(t, id1, rows[0].ID)
			assert.Equal(t, id2, rows[1].ID)

			_, err = repo.Insert(ctx, "   ", now)
			assert.Error(t, err, "blank descriptions violate the table check")
		})
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := database.OpenAndMigrate(database.DriverCGO, path, nil)
	require.NoError(t, err)
	_, err = repository.NewTaskRepo(db).Insert(context.Background(), "keep me", database.Now())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = database.OpenAndMigrate(database.DriverCGO, path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	n, err := repository.NewTaskRepo(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
