package core

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/icbutler/widgets"
)

// Handler runs when a bound key is pressed on a mounted node.
type Handler func() tea.Cmd

// InputHandler receives every message routed to a node that no key binding claimed.
type InputHandler func(msg tea.Msg) tea.Cmd

type binding struct {
	key     key.Binding
	handler Handler
}

// Node is a fragment of markup inserted into a Container. Handlers live on the
// node, so removing the node detaches them.
type Node struct {
	owner    *Container
	title    string
	markup   string
	body     widgets.Widget
	bindings []binding
	input    InputHandler
}

// Bind attaches h to k for as long as the node is attached.
func (n *Node) Bind(k key.Binding, h Handler) {
	n.bindings = append(n.bindings, binding{key: k, handler: h})
}

// BindInput attaches a raw input handler, used for text entry.
func (n *Node) BindInput(h InputHandler) {
	n.input = h
}

// SetMarkup replaces the node content. Markup is the content at its natural
// size, rendered as is unless a body is set.
func (n *Node) SetMarkup(markup string) { n.markup = markup }
func (n *Node) Markup() string          { return n.markup }
func (n *Node) Title() string           { return n.title }

// SetBody makes the container render the node at the size it is given, for
// content that has to fit the screen, like a scrolling list.
func (n *Node) SetBody(w widgets.Widget) { n.body = w }

// Attached reports whether the node is still part of its container.
func (n *Node) Attached() bool {
	return n.owner != nil && slices.Contains(n.owner.nodes, n)
}

// Remove detaches the node and everything bound to it. Removing twice is a no-op.
func (n *Node) Remove() {
	if n.owner == nil {
		return
	}
	n.owner.nodes = slices.DeleteFunc(n.owner.nodes, func(o *Node) bool { return o == n })
	n.owner = nil
	n.bindings = nil
	n.input = nil
	n.body = nil
}

// Container is the single view region shared by pages. It is owned by the
// Controller and lent to the current page.
type Container struct {
	nodes []*Node
}

func NewContainer() *Container {
	return &Container{}
}

// InsertTop prepends a new node and returns it.
func (c *Container) InsertTop(title, markup string) *Node {
	n := &Node{owner: c, title: title, markup: markup}
	c.nodes = slices.Insert(c.nodes, 0, n)
	return n
}

// Append adds a new node after the existing ones.
func (c *Container) Append(title, markup string) *Node {
	n := &Node{owner: c, title: title, markup: markup}
	c.nodes = append(c.nodes, n)
	return n
}

func (c *Container) Len() int      { return len(c.nodes) }
func (c *Container) Empty() bool    { return len(c.nodes) == 0 }
func (c *Container) Nodes() []*Node { return slices.Clone(c.nodes) }

// Dispatch routes a key press to the attached nodes. Key bindings win over
// input handlers. The boolean reports whether any node claimed the key.
func (c *Container) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	for _, n := range slices.Clone(c.nodes) {
		for _, b := range n.bindings {
			if b.key.Enabled() && key.Matches(msg, b.key) {
				return b.handler(), true
			}
		}
	}
	for _, n := range slices.Clone(c.nodes) {
		if n.input != nil {
			return n.input(msg), true
		}
	}
	return nil, false
}

// Broadcast forwards a non-key message to every input handler.
func (c *Container) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range slices.Clone(c.nodes) {
		if n.input != nil {
			cmds = append(cmds, n.input(msg))
		}
	}
	return tea.Batch(cmds...)
}

// Help lists the bindings of attached nodes for the footer.
func (c *Container) Help() []key.Binding {
	var out []key.Binding
	for _, n := range c.nodes {
		for _, b := range n.bindings {
			if b.key.Enabled() {
				out = append(out, b.key)
			}
		}
	}
	return out
}

// View renders every attached node framed in a box, stacked vertically.
func (c *Container) View(width, height int) string {
	if len(c.nodes) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	stack := widgets.VStack{Widgets: make([]widgets.Widget, 0, len(c.nodes))}
	for _, n := range c.nodes {
		stack.Widgets = append(stack.Widgets, widgets.Box{Title: n.title, Content: n.markup, Body: n.body})
	}
	return stack.Render(width, height)
}
