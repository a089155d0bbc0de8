// Package widgets implements the dashboard panels: the gradient
// header, the filter groups, the KPI row, the four graph cards, and
// the question/answer panel. Each widget implements app.Widget,
// renders from the broadcast style sheet, and keeps its helpers
// behind a short per-widget prefix.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/salespulse/salespulse/pkg/components"
)

// renderCard frames body inside a bordered card at exactly width x
// height. The frame style carries the border and padding; body is
// clipped rather than allowed to overflow.
func renderCard(frame lipgloss.Style, body string, width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	out := frame.Width(width - 2).Height(height - 2).Render(body)
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(out)
}

// innerWidth returns the content columns available inside a card.
func innerWidth(frame lipgloss.Style, width int) int {
	w := width - 2 - frame.GetPaddingLeft() - frame.GetPaddingRight()
	if w < 0 {
		return 0
	}
	return w
}

// fitLines pads or trims lines to exactly height rows, each at most
// width visible cells.
func fitLines(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if components.VisibleWidth(line) > width {
			lines[i] = components.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

// centerMessage renders msg centered in a width x height area. Areas
// with no rows render as empty.
func centerMessage(msg string, width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := make([]string, height)
	mid := height / 2
	for i := range lines {
		if i == mid {
			lines[i] = components.Pad(msg, width, components.AlignCenter)
		}
	}
	return strings.Join(lines, "\n")
}
