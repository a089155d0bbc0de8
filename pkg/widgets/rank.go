package widgets

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salespulse/salespulse/pkg/app"
	"github.com/salespulse/salespulse/pkg/components"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/styles"
	"github.com/salespulse/salespulse/pkg/theme"
)

// RankWidget is a top-N bar chart card over one grouping of the
// filtered view. The categories and cities cards are both instances.
type RankWidget struct {
	id    string
	title string
	topN  int
	color func(theme.Theme) string
	fetch func(sales.View, int) []sales.Rank

	sheet   styles.Sheet
	ranks   []sales.Rank
	hovered bool
	focused bool
}

// NewCategories creates the top categories card.
func NewCategories(topN int) *RankWidget {
	return &RankWidget{
		id:    "categories",
		title: fmt.Sprintf("Top %d Categories by Sales", topN),
		topN:  topN,
		color: func(t theme.Theme) string { return t.ChartBar },
		fetch: sales.View.TopCategories,
	}
}

// NewCities creates the top cities card.
func NewCities(topN int) *RankWidget {
	return &RankWidget{
		id:    "cities",
		title: fmt.Sprintf("Top %d Cities by Sales", topN),
		topN:  topN,
		color: func(t theme.Theme) string { return t.ChartAlt },
		fetch: sales.View.TopCities,
	}
}

// ID returns the unique identifier for this widget.
func (w *RankWidget) ID() string { return w.id }

// Title returns the display name for this widget.
func (w *RankWidget) Title() string { return w.title }

// MinSize returns the minimum width and height this widget requires.
func (w *RankWidget) MinSize() (int, int) { return 24, 6 }

// Update tracks styles, the ranking, and hover/focus.
func (w *RankWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.StyleUpdateEvent:
		w.sheet = msg.Sheet
	case app.ViewUpdateEvent:
		w.ranks = w.fetch(msg.View, w.topN)
	case app.WidgetHoverEvent:
		w.hovered = msg.WidgetID == w.id
	case app.WidgetFocusEvent:
		w.focused = msg.WidgetID == w.id
	}
	return nil
}

// HandleKey is a no-op; ranking cards are display-only.
func (w *RankWidget) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

// View renders the card.
func (w *RankWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := w.sheet
	frame := grFrame(s, w.hovered, w.focused)
	inner := innerWidth(frame, width)
	rows := height - 3

	body := grTitle(s, w.hovered).Render(components.Truncate(w.title, inner, "…"))
	if len(w.ranks) == 0 {
		return renderCard(frame, body+"\n"+centerMessage("No data", inner, rows), width, height)
	}

	bars := make([]components.BarRow, len(w.ranks))
	for i, r := range w.ranks {
		bars[i] = components.BarRow{Label: r.Name, Value: r.Sales}
	}
	chart := components.BarChart(bars, inner, components.BarChartOptions{
		BarColor:    w.color(s.Theme()),
		MaxRows:     rows,
		FormatValue: sales.FormatAmount,
	})

	return renderCard(frame, body+"\n"+chart, width, height)
}

// compile-time check that RankWidget implements app.Widget.
var _ app.Widget = (*RankWidget)(nil)
