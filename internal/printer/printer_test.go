package printer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/icbutler/internal/printer"
	"github.com/jask/icbutler/internal/task"
)

func fixture() []task.Task {
	return []task.Task{
		{ID: 1, Description: "buy milk"},
		{ID: 12, Description: "write\nreport"},
	}
}

func TestTablePrinterPrintList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printer.NewTablePrinter(&buf).PrintList(fixture()))

	assert.Equal(t, "ID  DESCRIPTION\n1   buy milk\n12  write report\n", buf.String())
}

func TestTablePrinterPrintListEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printer.NewTablePrinter(&buf).PrintList(nil))
	assert.Empty(t, buf.String())
}

func TestTablePrinterPrintTaskIsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printer.NewTablePrinter(&buf).PrintTask(fixture()[1]))

	assert.Contains(t, buf.String(), "ID:           12\n")
	assert.Contains(t, buf.String(), "Description:  write\nreport\n")
}

func TestJSONPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintList(fixture()))
	assert.JSONEq(t, `[{"id":"1","description":"buy milk"},{"id":"12","description":"write\nreport"}]`, buf.String())

	buf.Reset()
	require.NoError(t, p.PrintCreated(7))
	assert.JSONEq(t, `{"id":"7"}`, buf.String())
}

func TestYAMLPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewYAMLPrinter(&buf)

	require.NoError(t, p.PrintTask(task.Task{ID: 3, Description: "call mom"}))
	assert.Equal(t, "id: \"3\"\ndescription: call mom\n", buf.String())
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		format string
		expErr bool
	}{
		"Default is the table.": {format: ""},
		"Table.":                {format: printer.FormatTable},
		"JSON.":                 {format: printer.FormatJSON},
		"YAML.":                 {format: printer.FormatYAML},
		"Unknown formats fail.": {format: "xml", expErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := printer.New(test.format, &bytes.Buffer{})
			if test.expErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
