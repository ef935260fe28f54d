package core

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what the root model does with a key no page claimed.
type Action string

const ActionQuit Action = "quit"

// AppBinding binds an action to a key on some pages. An empty Pages list
// means every page, including PageNone before the first navigation.
type AppBinding struct {
	Action Action
	Key    key.Binding
	Pages  []PageKind
}

func (b AppBinding) activeOn(kind PageKind) bool {
	if !b.Key.Enabled() {
		return false
	}
	return len(b.Pages) == 0 || slices.Contains(b.Pages, kind)
}

// KeyMap holds the app-level bindings. Page bindings live on the nodes the
// pages mount and always take precedence.
type KeyMap struct {
	bindings []AppBinding
}

func NewKeyMap(bindings []AppBinding) *KeyMap {
	return &KeyMap{bindings: slices.Clone(bindings)}
}

// Help returns the bindings active on the page, for the footer.
func (k *KeyMap) Help(state PageState) []key.Binding {
	out := make([]key.Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		if b.activeOn(state.Kind) {
			out = append(out, b.Key)
		}
	}
	return out
}

// Match returns the action bound to msg on the page.
func (k *KeyMap) Match(msg tea.KeyMsg, state PageState) (Action, bool) {
	for _, b := range k.bindings {
		if b.activeOn(state.Kind) && key.Matches(msg, b.Key) {
			return b.Action, true
		}
	}
	return "", false
}
