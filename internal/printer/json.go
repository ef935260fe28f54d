package printer

import (
	"encoding/json"
	"io"

	"github.com/jask/icbutler/internal/task"
)

// JSONPrinter prints task information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

func (j *JSONPrinter) PrintList(tasks []task.Task) error {
	return j.encode(toItems(tasks))
}

func (j *JSONPrinter) PrintTask(t task.Task) error {
	return j.encode(toItem(t))
}

func (j *JSONPrinter) PrintCreated(id uint64) error {
	return j.encode(createdOutput{ID: toItem(task.Task{ID: id}).ID})
}

func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
