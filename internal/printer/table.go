package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jask/icbutler/internal/task"
)

// TablePrinter prints tasks in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintList prints tasks in a table format.
func (t *TablePrinter) PrintList(tasks []task.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tDESCRIPTION")
	for _, tk := range tasks {
		fmt.Fprintf(tw, "%d\t%s\n", tk.ID, strings.Join(strings.Fields(tk.Description), " "))
	}

	return nil
}

// PrintTask prints a single task, description verbatim.
func (t *TablePrinter) PrintTask(tk task.Task) error {
	fmt.Fprintf(t.writer, "ID:           %d\n", tk.ID)
	fmt.Fprintf(t.writer, "Description:  %s\n", tk.Description)
	return nil
}

func (t *TablePrinter) PrintCreated(id uint64) error {
	_, err := fmt.Fprintln(t.writer, id)
	return err
}

func (t *TablePrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}
