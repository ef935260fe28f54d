package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jask/icbutler/app"
	"github.com/jask/icbutler/internal/config"
	"github.com/jask/icbutler/internal/log"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigPath string
	Endpoint   string
	DBPath     string
	DBDriver   string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
	Config config.Config
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type, defaults to the configured log format.").EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("config", "Path to the TOML config file.").StringVar(&c.ConfigPath)
	app.Flag("endpoint", "Remote task store URL, the local database is used when empty.").StringVar(&c.Endpoint)
	app.Flag("db-path", "Path to the SQLite database file.").StringVar(&c.DBPath)
	app.Flag("db-driver", "SQLite driver.").EnumVar(&c.DBDriver, "sqlite3", "sqlite")

	return c
}

// LoadConfig reads the config file and environment, then applies flag overrides.
func (r *RootCommand) LoadConfig() error {
	cfg, err := config.LoadFrom(r.ConfigPath)
	if err != nil {
		return err
	}
	if r.Endpoint != "" {
		cfg.Client.Endpoint = r.Endpoint
	}
	if r.DBPath != "" {
		cfg.Database.Path = r.DBPath
	}
	if r.DBDriver != "" {
		cfg.Database.Driver = r.DBDriver
	}
	if r.LoggerType == "" {
		r.LoggerType = LoggerTypeDefault
		if strings.EqualFold(cfg.Log.Format, "json") {
			r.LoggerType = LoggerTypeJSON
		}
	}
	r.Config = cfg
	return nil
}

// OpenStore opens the configured task store.
func (r *RootCommand) OpenStore(ctx context.Context) (*app.Store, error) {
	store, err := app.OpenStore(ctx, r.Config, r.Logger)
	if err != nil {
		return nil, fmt.Errorf("could not open task store: %w", err)
	}
	return store, nil
}
