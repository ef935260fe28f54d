// Package tui runs the terminal client.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/icbutler/app"
	"github.com/jask/icbutler/internal/log"
	"github.com/jask/icbutler/internal/task"
)

// Config is the configuration for the terminal client.
type Config struct {
	Service task.Service
	Title   string
	Logger  log.Logger
	// Input and Output default to the process terminal.
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

func (c *Config) defaults() error {
	if c.Service == nil {
		return fmt.Errorf("task service is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "tui"})
	return nil
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not an
// error.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.defaults(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	m, err := app.NewModel(app.ModelConfig{
		Context: ctx,
		Service: cfg.Service,
		Title:   cfg.Title,
		Logger:  cfg.Logger,
	})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}

	cfg.Logger.Debugf("Starting terminal client")
	_, err = tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			cfg.Logger.Debugf("Terminal client stopped: %s", ctx.Err())
			return nil
		}
		return fmt.Errorf("terminal client: %w", err)
	}
	return nil
}
