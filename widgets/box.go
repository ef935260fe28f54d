package widgets

import "github.com/charmbracelet/lipgloss"

// Box frames content with a rounded border and a bracketed title. When Body
// is set it is rendered at the inner size of the box and Content is ignored.
type Box struct {
	Title   string
	Content string
	Body    Widget
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(max(1, width-2)).Height(max(1, height-2))
	body := b.Content
	if b.Body != nil {
		innerH := height - 2
		if b.Title != "" {
			innerH--
		}
		body = b.Body.Render(max(1, width-4), max(1, innerH))
	}
	if b.Title != "" {
		body = "[" + b.Title + "]\n" + body
	}
	return style.Render(body)
}
