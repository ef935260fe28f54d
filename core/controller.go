package core

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/icbutler/internal/log"
	"github.com/jask/icbutler/internal/task"
)

// ControllerConfig is the configuration for the page controller.
type ControllerConfig struct {
	Context   context.Context
	Service   task.Service
	Pages     Pages
	Container *Container
	Logger    log.Logger
}

func (c *ControllerConfig) defaults() error {
	if c.Service == nil {
		return fmt.Errorf("task service is required")
	}
	if err := c.Pages.validate(); err != nil {
		return err
	}
	if c.Context == nil {
		c.Context = context.Background()
	}
	if c.Container == nil {
		c.Container = NewContainer()
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "core.Controller"})
	return nil
}

// Controller owns the page state and the container. It keeps at most one page
// mounted and swaps pages only once the data for the incoming page is fetched.
//
// Every navigation takes a new generation number. Results that come back for
// an older generation are dropped, so the latest navigation always wins.
//
// Navigation entry points return commands that do the remote work off the UI
// loop. Apply and Created must be called from the UI loop.
type Controller struct {
	ctx       context.Context
	svc       task.Service
	pages     Pages
	container *Container
	logger    log.Logger

	gen     uint64
	state   PageState
	current View
}

var _ Navigator = (*Controller)(nil)

// NewController returns a controller with no page mounted.
func NewController(cfg ControllerConfig) (*Controller, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Controller{
		ctx:       cfg.Context,
		svc:       cfg.Service,
		pages:     cfg.Pages,
		container: cfg.Container,
		logger:    cfg.Logger,
	}, nil
}

// State is the page currently mounted.
func (c *Controller) State() PageState { return c.state }

// Container is the view region the pages mount into.
func (c *Controller) Container() *Container { return c.container }

// Start shows the list page.
func (c *Controller) Start() tea.Cmd { return c.ShowList() }

func (c *Controller) next() uint64 {
	c.gen++
	return c.gen
}

// ShowList fetches every task and then shows the list page.
func (c *Controller) ShowList() tea.Cmd {
	gen := c.next()
	return func() tea.Msg {
		tasks, err := c.svc.ListTasks(c.ctx)
		return NavigatedMsg{Gen: gen, Target: PageState{Kind: PageList}, Tasks: tasks, Err: err}
	}
}

// ShowAdd shows the add page. It needs no fetch.
func (c *Controller) ShowAdd() tea.Cmd {
	gen := c.next()
	return func() tea.Msg {
		return NavigatedMsg{Gen: gen, Target: PageState{Kind: PageAdd}}
	}
}

// ShowDetail fetches the task and then shows its detail page.
func (c *Controller) ShowDetail(id uint64) tea.Cmd {
	gen := c.next()
	return func() tea.Msg {
		t, err := c.svc.GetTask(c.ctx, id)
		return NavigatedMsg{Gen: gen, Target: PageState{Kind: PageDetail, TaskID: id}, Task: t, Err: err}
	}
}

// Create adds a task. Once the add completes, Created reloads the list.
func (c *Controller) Create(description string) tea.Cmd {
	gen := c.next()
	return func() tea.Msg {
		id, err := c.svc.AddTask(c.ctx, description)
		return TaskCreatedMsg{Gen: gen, ID: id, Description: description, Err: err}
	}
}

func (c *Controller) stale(gen uint64) bool {
	return gen != c.gen
}

// Apply completes a navigation. A failed fetch leaves the current page
// mounted and returns the error. On success the outgoing page is destroyed
// before the incoming one is built and mounted.
func (c *Controller) Apply(msg NavigatedMsg) error {
	logger := c.logger.WithValues(log.Kv{"target": msg.Target.String(), "gen": msg.Gen})
	if c.stale(msg.Gen) {
		logger.Debugf("Dropping stale navigation, latest is %d", c.gen)
		return nil
	}
	if msg.Err != nil {
		logger.Warningf("Navigation failed: %s", msg.Err)
		return fmt.Errorf("show %s: %w", msg.Target, msg.Err)
	}

	c.destroyCurrent()

	var page View
	switch msg.Target.Kind {
	case PageList:
		page = c.pages.List(c, msg.Tasks)
	case PageAdd:
		page = c.pages.Add(c)
	case PageDetail:
		page = c.pages.Detail(c, msg.Task)
	default:
		return fmt.Errorf("unknown page %q", msg.Target)
	}

	if err := page.Mount(c.container); err != nil {
		page.Destroy()
		logger.Errorf("Could not mount page: %s", err)
		return fmt.Errorf("mount %s page: %w", msg.Target, err)
	}
	c.current = page
	c.state = msg.Target
	logger.Debugf("Page mounted")
	return nil
}

// Created completes an add. The list is reloaded whatever the outcome, and
// the add error, if any, is returned alongside.
func (c *Controller) Created(msg TaskCreatedMsg) (tea.Cmd, error) {
	if c.stale(msg.Gen) {
		c.logger.WithValues(log.Kv{"gen": msg.Gen}).Debugf("Dropping stale add result, latest is %d", c.gen)
		if msg.Err != nil {
			return nil, fmt.Errorf("add task: %w", msg.Err)
		}
		return nil, nil
	}
	var err error
	if msg.Err != nil {
		c.logger.Warningf("Could not add task: %s", msg.Err)
		err = fmt.Errorf("add task: %w", msg.Err)
	} else {
		c.logger.WithValues(log.Kv{"id": msg.ID}).Infof("Task added")
	}
	return c.ShowList(), err
}

func (c *Controller) destroyCurrent() {
	if c.current == nil {
		return
	}
	c.current.Destroy()
	c.current = nil
	c.state = PageState{}
}
