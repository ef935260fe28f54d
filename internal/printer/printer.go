// Package printer renders task store results for the one-shot commands.
package printer

import (
	"fmt"
	"io"

	"github.com/jask/icbutler/internal/task"
)

// Formats accepted by New.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Printer knows how to print task information in different formats.
type Printer interface {
	PrintList(tasks []task.Task) error
	PrintTask(t task.Task) error
	PrintCreated(id uint64) error
	PrintMessage(msg string) error
}

// New returns the printer for format.
func New(format string, w io.Writer) (Printer, error) {
	switch format {
	case "", FormatTable:
		return NewTablePrinter(w), nil
	case FormatJSON:
		return NewJSONPrinter(w), nil
	case FormatYAML:
		return NewYAMLPrinter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// taskItem is a task as printed by the structured printers. The id is text,
// like the add answer on the wire.
type taskItem struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

type createdOutput struct {
	ID string `json:"id" yaml:"id"`
}

type messageOutput struct {
	Message string `json:"message" yaml:"message"`
}

func toItems(tasks []task.Task) []taskItem {
	items := make([]taskItem, len(tasks))
	for i, t := range tasks {
		items[i] = toItem(t)
	}
	return items
}

func toItem(t task.Task) taskItem {
	return taskItem{ID: fmt.Sprint(t.ID), Description: t.Description}
}
