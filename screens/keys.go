package screens

import "github.com/charmbracelet/bubbles/key"

var (
	keyUp      = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown    = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyOpen    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	keyAdd     = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task"))
	keyRefresh = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
	keySubmit  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	keyCancel  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	keyBack    = key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back"))
)
