package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jask/icbutler/internal/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies all up migrations embedded in the binary.
// The migrate instance is not closed on purpose: closing it would close db.
func RunMigrations(db *sql.DB, logger log.Logger) error {
	if logger == nil {
		logger = log.Noop
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Errorf("could not close migrations source: %s", err)
		}
	}()

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Debugf("Migrations applied")
	return nil
}

// OpenAndMigrate opens the database at path and brings its schema up to date.
func OpenAndMigrate(driver, path string, logger log.Logger) (*sql.DB, error) {
	db, err := Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := RunMigrations(db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
