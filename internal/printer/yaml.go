package printer

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jask/icbutler/internal/task"
)

// YAMLPrinter prints task information in YAML format.
type YAMLPrinter struct {
	writer io.Writer
}

// NewYAMLPrinter creates a new YAML printer.
func NewYAMLPrinter(w io.Writer) *YAMLPrinter {
	return &YAMLPrinter{writer: w}
}

func (y *YAMLPrinter) PrintList(tasks []task.Task) error {
	return y.encode(toItems(tasks))
}

func (y *YAMLPrinter) PrintTask(t task.Task) error {
	return y.encode(toItem(t))
}

func (y *YAMLPrinter) PrintCreated(id uint64) error {
	return y.encode(createdOutput{ID: toItem(task.Task{ID: id}).ID})
}

func (y *YAMLPrinter) PrintMessage(msg string) error {
	return y.encode(messageOutput{Message: msg})
}

func (y *YAMLPrinter) encode(v any) error {
	enc := yaml.NewEncoder(y.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
