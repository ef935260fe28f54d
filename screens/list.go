package screens

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/icbutler/core"
	"github.com/jask/icbutler/internal/task"
	"github.com/jask/icbutler/widgets"
)

const emptyListText = "No tasks yet."

// ListData is everything RenderList needs. A zero Width or Height renders
// every row at its natural width.
type ListData struct {
	Tasks  []task.Task
	Cursor int
	Width  int
	Height int
}

// RenderList renders one row per task in the given order. When there are
// more rows than Height, the rows scroll to keep the cursor visible.
func RenderList(d ListData) string {
	if len(d.Tasks) == 0 {
		return emptyListText
	}
	rows := make([]string, 0, len(d.Tasks))
	width := 0
	for _, t := range d.Tasks {
		row := fmt.Sprintf("#%-4d %s", t.ID, oneLine(t.Description))
		rows = append(rows, row)
		width = max(width, ansi.StringWidth(row))
	}
	if d.Width > 0 {
		width = d.Width
	}
	height := len(rows)
	if d.Height > 0 {
		height = d.Height
	}
	return widgets.List{Items: rows, Cursor: d.Cursor}.Render(width, height)
}

// ListPage shows every task, newest first.
type ListPage struct {
	nav     core.Navigator
	tasks   []task.Task
	cursor  int
	node    *core.Node
	mounted bool
}

var _ core.View = (*ListPage)(nil)

func NewListPage(nav core.Navigator, tasks []task.Task) *ListPage {
	rows := slices.Clone(tasks)
	slices.Reverse(rows)
	return &ListPage{nav: nav, tasks: rows}
}

func (p *ListPage) Mount(c *core.Container) error {
	if p.mounted {
		return core.ErrAlreadyMounted
	}
	if c == nil {
		return fmt.Errorf("list page: nil container")
	}
	p.mounted = true
	p.node = c.InsertTop("Tasks", RenderList(p.data()))
	p.node.SetBody(widgets.WidgetFunc(p.renderSized))
	p.node.Bind(keyUp, p.moveUp)
	p.node.Bind(keyDown, p.moveDown)
	p.node.Bind(keyOpen, p.open)
	p.node.Bind(keyAdd, p.nav.ShowAdd)
	p.node.Bind(keyRefresh, p.nav.ShowList)
	return nil
}

func (p *ListPage) Destroy() {
	if p.node == nil {
		return
	}
	p.node.Remove()
	p.node = nil
}

// Tasks returns the rows in display order.
func (p *ListPage) Tasks() []task.Task { return slices.Clone(p.tasks) }

func (p *ListPage) data() ListData {
	return ListData{Tasks: p.tasks, Cursor: p.cursor}
}

func (p *ListPage) renderSized(width, height int) string {
	d := p.data()
	d.Width, d.Height = width, height
	return RenderList(d)
}

func (p *ListPage) render() {
	if p.node != nil {
		p.node.SetMarkup(RenderList(p.data()))
	}
}

func (p *ListPage) moveUp() tea.Cmd {
	if p.cursor > 0 {
		p.cursor--
		p.render()
	}
	return nil
}

func (p *ListPage) moveDown() tea.Cmd {
	if p.cursor < len(p.tasks)-1 {
		p.cursor++
		p.render()
	}
	return nil
}

func (p *ListPage) open() tea.Cmd {
	if len(p.tasks) == 0 {
		return nil
	}
	return p.nav.ShowDetail(p.tasks[p.cursor].ID)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
