package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/salespulse/salespulse/pkg/app"
	"github.com/salespulse/salespulse/pkg/components"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/styles"
	"github.com/salespulse/salespulse/pkg/theme"
)

// StatusWidget is the order-status distribution card. Each status bar
// takes its color from the status family: delivered green, in-flight
// amber, cancelled or returned red.
type StatusWidget struct {
	sheet   styles.Sheet
	counts  []sales.Rank
	hovered bool
	focused bool
}

// NewStatus creates the status distribution card.
func NewStatus() *StatusWidget {
	return &StatusWidget{}
}

// ID returns the unique identifier for this widget.
func (w *StatusWidget) ID() string { return "status" }

// Title returns the display name for this widget.
func (w *StatusWidget) Title() string { return "Order Status Distribution" }

// MinSize returns the minimum width and height this widget requires.
func (w *StatusWidget) MinSize() (int, int) { return 24, 6 }

// Update tracks styles, the status counts, and hover/focus.
func (w *StatusWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.StyleUpdateEvent:
		w.sheet = msg.Sheet
	case app.ViewUpdateEvent:
		w.counts = msg.View.StatusCounts()
	case app.WidgetHoverEvent:
		w.hovered = msg.WidgetID == w.ID()
	case app.WidgetFocusEvent:
		w.focused = msg.WidgetID == w.ID()
	}
	return nil
}

// HandleKey is a no-op; the status card is display-only.
func (w *StatusWidget) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

// View renders the card.
func (w *StatusWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := w.sheet
	frame := grFrame(s, w.hovered, w.focused)
	inner := innerWidth(frame, width)
	rows := height - 3

	body := grTitle(s, w.hovered).Render(components.Truncate(w.Title(), inner, "…"))
	if len(w.counts) == 0 {
		return renderCard(frame, body+"\n"+centerMessage("No data", inner, rows), width, height)
	}

	t := s.Theme()
	bars := make([]components.BarRow, len(w.counts))
	colors := make([]string, len(w.counts))
	for i, r := range w.counts {
		bars[i] = components.BarRow{Label: r.Name, Value: float64(r.Count)}
		colors[i] = theme.StatusColor(t, r.Name)
	}
	chart := components.BarChart(bars, inner, components.BarChartOptions{
		RowColors: colors,
		MaxRows:   rows,
		FormatValue: func(v float64) string {
			return sales.FormatCount(int(v))
		},
	})

	return renderCard(frame, body+"\n"+chart, width, height)
}

// compile-time check that StatusWidget implements app.Widget.
var _ app.Widget = (*StatusWidget)(nil)
