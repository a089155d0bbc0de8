package widgets

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/salespulse/salespulse/pkg/app"
	"github.com/salespulse/salespulse/pkg/components"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/styles"
	"github.com/salespulse/salespulse/pkg/theme"
)

// HeaderWidget renders the page banner: the dashboard title over a
// horizontal color gradient, an order-count subtitle, and an accent
// rule along the bottom edge.
type HeaderWidget struct {
	sheet  styles.Sheet
	orders int
	scope  string
}

// NewHeader creates the banner widget.
func NewHeader() *HeaderWidget {
	return &HeaderWidget{}
}

// ID returns the unique identifier for this widget.
func (w *HeaderWidget) ID() string { return "header" }

// Title returns the banner text.
func (w *HeaderWidget) Title() string { return "Sales Insights Dashboard" }

// MinSize returns the minimum width and height this widget requires.
func (w *HeaderWidget) MinSize() (int, int) { return 40, 3 }

// Update tracks the style sheet and the visible order count.
func (w *HeaderWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.StyleUpdateEvent:
		w.sheet = msg.Sheet
	case app.ViewUpdateEvent:
		w.orders = msg.View.OrderCount()
		w.scope = msg.View.Scope()
	}
	return nil
}

// HandleKey is a no-op; the banner is not interactive.
func (w *HeaderWidget) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

// View renders the gradient band, the subtitle, and the accent rule
// the banner's bottom border provides.
func (w *HeaderWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := w.sheet
	t := s.Theme()

	band := hdGradientBand(w.Title(), width, t)
	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Dim)).
		Render(fmt.Sprintf("%s orders · %s", sales.FormatCount(w.orders), w.scope))

	out := s.Header.Padding(0).Width(width).Render(band + "\n" + subtitle)
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(out)
}

// hdGradientBand renders text centered over a start-to-end background
// gradient spanning width cells.
func hdGradientBand(text string, width int, t theme.Theme) string {
	if width <= 0 {
		return ""
	}
	ramp := theme.Gradient(t.HeaderStart, t.HeaderEnd, width)
	line := components.Pad(components.Truncate(text, width, "…"), width, components.AlignCenter)

	var b strings.Builder
	col := 0
	for _, r := range line {
		bg := ramp[len(ramp)-1]
		if col < len(ramp) {
			bg = ramp[col]
		}
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(t.HeaderText)).
			Render(string(r)))
		col++
	}
	return b.String()
}

// compile-time check that HeaderWidget implements app.Widget.
var _ app.Widget = (*HeaderWidget)(nil)
