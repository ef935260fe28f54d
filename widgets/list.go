package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var selectedRowStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

// List renders rows with an optional highlighted cursor row. Rows past height
// are clipped so the cursor stays visible.
type List struct {
	Items  []string
	Cursor int
	Empty  string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(l.Items) == 0 {
		return padRight(l.Empty, width)
	}
	start := 0
	if l.Cursor >= height {
		start = l.Cursor - height + 1
	}
	end := min(len(l.Items), start+height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := padRight(l.Items[i], width)
		if i == l.Cursor {
			row = selectedRowStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}
