package screens

import (
	"errors"
	"fmt"

	"github.com/jask/icbutler/core"
	"github.com/jask/icbutler/internal/task"
)

// ErrMalformedTask is returned when a page is handed a task the store could
// never have issued.
var ErrMalformedTask = errors.New("malformed task")

type DetailData struct {
	Task task.Task
}

// RenderDetail prints the description verbatim under the task id.
func RenderDetail(d DetailData) string {
	return fmt.Sprintf("Task #%d\n\n%s", d.Task.ID, d.Task.Description)
}

// DetailPage shows a single task. It has no editing.
type DetailPage struct {
	nav     core.Navigator
	task    task.Task
	node    *core.Node
	mounted bool
}

var _ core.View = (*DetailPage)(nil)

func NewDetailPage(nav core.Navigator, t task.Task) *DetailPage {
	return &DetailPage{nav: nav, task: t}
}

func (p *DetailPage) Mount(c *core.Container) error {
	if p.mounted {
		return core.ErrAlreadyMounted
	}
	if c == nil {
		return fmt.Errorf("detail page: nil container")
	}
	if p.task.ID == 0 {
		return fmt.Errorf("detail page: %w: missing id", ErrMalformedTask)
	}
	p.mounted = true
	p.node = c.InsertTop("Task", RenderDetail(DetailData{Task: p.task}))
	p.node.Bind(keyBack, p.nav.ShowList)
	return nil
}

func (p *DetailPage) Destroy() {
	if p.node == nil {
		return
	}
	p.node.Remove()
	p.node = nil
}
