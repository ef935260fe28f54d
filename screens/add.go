package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/icbutler/core"
	"github.com/jask/icbutler/internal/task"
)

const emptyInputMessage = "Please enter new task!"

type AddData struct {
	Input   string
	Message string
}

// RenderAdd renders the input line and the validation message, if any.
func RenderAdd(d AddData) string {
	var b strings.Builder
	b.WriteString(d.Input)
	if d.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(d.Message)
	}
	return b.String()
}

// AddPage reads a description and asks the navigator to create it.
type AddPage struct {
	nav     core.Navigator
	input   textinput.Model
	message string
	node    *core.Node
	mounted bool
}

var _ core.View = (*AddPage)(nil)

func NewAddPage(nav core.Navigator) *AddPage {
	inp := textinput.New()
	inp.Placeholder = "What needs doing?"
	inp.Prompt = "task> "
	inp.CharLimit = 512
	return &AddPage{nav: nav, input: inp}
}

func (p *AddPage) Mount(c *core.Container) error {
	if p.mounted {
		return core.ErrAlreadyMounted
	}
	if c == nil {
		return fmt.Errorf("add page: nil container")
	}
	p.mounted = true
	p.input.Focus()
	p.node = c.InsertTop("New task", "")
	p.node.Bind(keySubmit, p.submit)
	p.node.Bind(keyCancel, p.nav.ShowList)
	p.node.BindInput(p.update)
	p.render()
	return nil
}

func (p *AddPage) Destroy() {
	if p.node == nil {
		return
	}
	p.input.Blur()
	p.node.Remove()
	p.node = nil
}

// Value is the current, untrimmed input.
func (p *AddPage) Value() string { return p.input.Value() }

// Message is the validation message shown under the input.
func (p *AddPage) Message() string { return p.message }

func (p *AddPage) render() {
	if p.node != nil {
		p.node.SetMarkup(RenderAdd(AddData{Input: p.input.View(), Message: p.message}))
	}
}

func (p *AddPage) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.render()
	return cmd
}

func (p *AddPage) submit() tea.Cmd {
	desc, err := task.ValidateDescription(p.input.Value())
	if err != nil {
		p.message = emptyInputMessage
		p.render()
		return nil
	}
	p.message = ""
	p.input.Reset()
	p.render()
	return p.nav.Create(desc)
}
