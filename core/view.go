package core

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/icbutler/internal/task"
)

// ErrAlreadyMounted is returned when a page instance is mounted twice.
var ErrAlreadyMounted = errors.New("page is already mounted")

// View is the lifecycle every page implements. Mount renders into the
// container and binds handlers to the inserted nodes. Destroy removes every
// node the page inserted and releases the container; repeated calls are no-ops.
type View interface {
	Mount(c *Container) error
	Destroy()
}

// Navigator is what pages call to ask for a transition. Pages never touch the
// page state themselves.
type Navigator interface {
	ShowList() tea.Cmd
	ShowAdd() tea.Cmd
	ShowDetail(id uint64) tea.Cmd
	Create(description string) tea.Cmd
}

// Pages builds the page variants. They are injected so this package does not
// depend on the concrete screens.
type Pages struct {
	List   func(nav Navigator, tasks []task.Task) View
	Add    func(nav Navigator) View
	Detail func(nav Navigator, t task.Task) View
}

func (p Pages) validate() error {
	if p.List == nil || p.Add == nil || p.Detail == nil {
		return fmt.Errorf("list, add and detail page factories are required")
	}
	return nil
}

type PageKind int

const (
	PageNone PageKind = iota
	PageList
	PageAdd
	PageDetail
)

func (k PageKind) String() string {
	switch k {
	case PageList:
		return "list"
	case PageAdd:
		return "add"
	case PageDetail:
		return "detail"
	default:
		return "none"
	}
}

// PageState is the page currently mounted. TaskID is only set for PageDetail.
type PageState struct {
	Kind   PageKind
	TaskID uint64
}

func (s PageState) String() string {
	if s.Kind == PageDetail {
		return fmt.Sprintf("detail(%d)", s.TaskID)
	}
	return s.Kind.String()
}
