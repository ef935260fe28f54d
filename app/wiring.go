// Package app wires the page controller, the concrete pages and the task
// store together.
package app

import (
	"context"
	"fmt"

	"github.com/jask/icbutler/core"
	"github.com/jask/icbutler/internal/log"
	"github.com/jask/icbutler/internal/task"
	"github.com/jask/icbutler/screens"
)

// Pages returns the factories for the concrete pages.
func Pages() core.Pages {
	return core.Pages{
		List: func(nav core.Navigator, tasks []task.Task) core.View {
			return screens.NewListPage(nav, tasks)
		},
		Add: func(nav core.Navigator) core.View {
			return screens.NewAddPage(nav)
		},
		Detail: func(nav core.Navigator, t task.Task) core.View {
			return screens.NewDetailPage(nav, t)
		},
	}
}

// ModelConfig is the configuration for the root model.
type ModelConfig struct {
	Context context.Context
	Service task.Service
	Title   string
	Keys    []core.AppBinding
	Logger  log.Logger
}

// NewModel builds the controller with the concrete pages and returns the
// root model. No page is mounted until the model's Init runs.
func NewModel(cfg ModelConfig) (core.Model, error) {
	ctl, err := core.NewController(core.ControllerConfig{
		Context: cfg.Context,
		Service: cfg.Service,
		Pages:   Pages(),
		Logger:  cfg.Logger,
	})
	if err != nil {
		return core.Model{}, fmt.Errorf("could not create page controller: %w", err)
	}
	keys := cfg.Keys
	if len(keys) == 0 {
		keys = core.DefaultAppBindings()
	}
	return core.NewModel(ctl, core.NewKeyMap(keys), cfg.Title), nil
}
