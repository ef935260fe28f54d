package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	// DriverCGO is the mattn/go-sqlite3 driver.
	DriverCGO = "sqlite3"
	// DriverPure is the modernc.org/sqlite driver, usable without cgo.
	DriverPure = "sqlite"
)

// Open opens sqlite with sensible defaults. An empty driver selects DriverCGO.
func Open(driver, path string) (*sql.DB, error) {
	var dsn string
	switch driver {
	case "", DriverCGO:
		driver = DriverCGO
		dsn = fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	case DriverPure:
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	default:
		return nil, fmt.Errorf("unknown sqlite driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}

// WithTx runs fn in a transaction.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Now returns UTC time truncated to seconds (consistent with SQLite default).
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
