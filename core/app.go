package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model. It owns no page itself: it routes input
// into the controller's container and completes the controller's navigations.
type Model struct {
	width     int
	height    int
	title     string
	ctl       *Controller
	keys      *KeyMap
	status    string
	statusErr bool
	quitting  bool
}

func NewModel(ctl *Controller, keys *KeyMap, title string) Model {
	if keys == nil {
		keys = NewKeyMap(DefaultAppBindings())
	}
	if title == "" {
		title = "ICButler"
	}
	return Model{
		ctl:    ctl,
		keys:   keys,
		title:  title,
		status: "Ready",
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.ctl.Start()
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// Page is the page currently mounted.
func (m Model) Page() PageState {
	return m.ctl.State()
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) Controller() *Controller {
	return m.ctl
}
