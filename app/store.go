package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/icbutler/internal/config"
	"github.com/jask/icbutler/internal/database"
	"github.com/jask/icbutler/internal/database/repository"
	"github.com/jask/icbutler/internal/log"
	"github.com/jask/icbutler/internal/rpc"
	"github.com/jask/icbutler/internal/service"
	"github.com/jask/icbutler/internal/task"
)

// Store is the task store the client talks to. DB is nil when the store is
// remote.
type Store struct {
	Service task.Service
	DB      *sql.DB
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// OpenStore returns the remote store when an endpoint is configured and the
// local SQLite store otherwise.
func OpenStore(_ context.Context, cfg config.Config, logger log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Noop
	}
	if cfg.Remote() {
		c, err := rpc.NewClient(rpc.ClientConfig{
			Endpoint: cfg.Client.Endpoint,
			Timeout:  cfg.Client.Timeout,
			Logger:   logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create rpc client: %w", err)
		}
		logger.WithValues(log.Kv{"endpoint": cfg.Client.Endpoint}).Debugf("Using remote task store")
		return &Store{Service: c}, nil
	}
	return OpenLocalStore(cfg, logger)
}

// OpenLocalStore opens and migrates the SQLite database.
func OpenLocalStore(cfg config.Config, logger log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Noop
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create database dir: %w", err)
	}
	db, err := database.OpenAndMigrate(cfg.Database.Driver, cfg.Database.Path, logger)
	if err != nil {
		return nil, err
	}
	logger.WithValues(log.Kv{"path": cfg.Database.Path}).Debugf("Using local task store")
	return &Store{
		Service: service.NewTaskService(repository.NewTaskRepo(db), logger),
		DB:      db,
	}, nil
}
