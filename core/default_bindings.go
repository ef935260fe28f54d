package core

import "github.com/charmbracelet/bubbles/key"

// DefaultAppBindings are the app-level bindings. q is text on the add page, so
// only ctrl+c quits there.
func DefaultAppBindings() []AppBinding {
	return []AppBinding{
		{
			Action: ActionQuit,
			Key:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
			Pages:  []PageKind{PageNone, PageList, PageDetail},
		},
		{
			Action: ActionQuit,
			Key:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
			Pages:  []PageKind{PageAdd},
		},
	}
}
