package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/salespulse/salespulse/pkg/app"
	"github.com/salespulse/salespulse/pkg/components"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/styles"
)

// TrendWidget is the monthly sales trend card: a column chart over the
// filtered view's months, falling back to a sparkline when the card is
// too short for columns.
type TrendWidget struct {
	sheet   styles.Sheet
	trend   []sales.Rank
	hovered bool
	focused bool
}

// NewTrend creates the monthly trend card.
func NewTrend() *TrendWidget {
	return &TrendWidget{}
}

// ID returns the unique identifier for this widget.
func (w *TrendWidget) ID() string { return "trend" }

// Title returns the display name for this widget.
func (w *TrendWidget) Title() string { return "Sales Trend by Month" }

// MinSize returns the minimum width and height this widget requires.
func (w *TrendWidget) MinSize() (int, int) { return 24, 6 }

// Update tracks styles, the monthly aggregation, and hover/focus.
func (w *TrendWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.StyleUpdateEvent:
		w.sheet = msg.Sheet
	case app.ViewUpdateEvent:
		w.trend = msg.View.MonthlyTrend()
	case app.WidgetHoverEvent:
		w.hovered = msg.WidgetID == w.ID()
	case app.WidgetFocusEvent:
		w.focused = msg.WidgetID == w.ID()
	}
	return nil
}

// HandleKey is a no-op; the trend card is display-only.
func (w *TrendWidget) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

// View renders the card.
func (w *TrendWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := w.sheet
	frame := grFrame(s, w.hovered, w.focused)
	inner := innerWidth(frame, width)
	rows := height - 3 // border + title line

	body := grTitle(s, w.hovered).Render(components.Truncate(w.Title(), inner, "…"))
	if len(w.trend) == 0 {
		return renderCard(frame, body+"\n"+centerMessage("No data", inner, rows), width, height)
	}

	values := make([]float64, len(w.trend))
	for i, r := range w.trend {
		values[i] = r.Sales
	}

	line := s.Theme().ChartLine
	if rows >= 3 {
		chart := components.ColumnChart(values, inner, rows-1, line)
		body += "\n" + chart + "\n" + w.trMonthAxis(inner)
	} else {
		body += "\n" + components.Sparkline(values, inner, line)
	}

	return renderCard(frame, body, width, height)
}

// trMonthAxis renders the first and last month under the chart.
func (w *TrendWidget) trMonthAxis(width int) string {
	first := w.trend[0].Name
	last := w.trend[len(w.trend)-1].Name
	if len(w.trend) == 1 || components.VisibleWidth(first+last)+1 > width {
		return components.Truncate(first, width, "…")
	}
	gap := width - components.VisibleWidth(first) - components.VisibleWidth(last)
	return first + components.Pad("", gap, components.AlignLeft) + last
}

// compile-time check that TrendWidget implements app.Widget.
var _ app.Widget = (*TrendWidget)(nil)
