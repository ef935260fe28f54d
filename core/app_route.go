package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case NavigatedMsg:
		if err := m.ctl.Apply(msg); err != nil {
			m.SetError(err)
		}
		return m, nil
	case TaskCreatedMsg:
		cmd, err := m.ctl.Created(msg)
		if err != nil {
			m.SetError(err)
		} else if cmd != nil {
			m.SetStatus("New task is added!")
		}
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if cmd, ok := m.ctl.Container().Dispatch(msg); ok {
			return m, cmd
		}
		if action, ok := m.keys.Match(msg, m.Page()); ok && action == ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m, m.ctl.Container().Broadcast(msg)
}
