package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack splits height between widgets by Ratios, evenly when Ratios does
// not match the widget count.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	usable := max(1, height-spacingTotal)
	heights := splitSizes(usable, len(v.Widgets), v.Ratios)
	lines := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		lines = append(lines, w.Render(width, max(1, heights[i])))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func splitSizes(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
