package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/salespulse/salespulse/pkg/app"
	"github.com/salespulse/salespulse/pkg/components"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/styles"
)

// kpKinds maps each KPI card to its metric kind and display label.
var kpKinds = []struct {
	kind  string
	label string
}{
	{"sales", "Total Sales"},
	{"orders", "Total Orders"},
	{"avg-value", "Average Order Value"},
}

// KPIWidget renders the three KPI cards. Each card carries its
// metric's accent color on the top edge and lifts its border while the
// mouse is over it.
type KPIWidget struct {
	sheet   styles.Sheet
	zm      *zone.Manager
	view    sales.View
	hovered string
}

// NewKPIs creates the KPI row. The zone manager registers the
// per-card hover targets.
func NewKPIs(zm *zone.Manager) *KPIWidget {
	return &KPIWidget{zm: zm}
}

// ID returns the unique identifier for this widget.
func (w *KPIWidget) ID() string { return "kpi" }

// Title returns the display name for this widget.
func (w *KPIWidget) Title() string { return "Key Metrics" }

// MinSize returns the minimum width and height this widget requires.
func (w *KPIWidget) MinSize() (int, int) {
	if w.sheet.Narrow {
		return 40, 8 // 2+1 arrangement, two card rows
	}
	return 60, 4
}

// Update tracks styles, the filtered view, and per-card hover.
func (w *KPIWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.StyleUpdateEvent:
		w.sheet = msg.Sheet

	case app.ViewUpdateEvent:
		w.view = msg.View

	case tea.MouseMsg:
		w.hovered = ""
		for _, k := range kpKinds {
			if w.zm.Get("kpi:"+k.kind).InBounds(msg) {
				w.hovered = k.kind
				break
			}
		}
	}
	return nil
}

// HandleKey is a no-op; the KPI cards are display-only.
func (w *KPIWidget) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

// View lays the cards out three across, or two-plus-one when narrow.
func (w *KPIWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	if w.sheet.Narrow {
		half := width / 2
		top := lipgloss.JoinHorizontal(lipgloss.Top,
			w.kpCard(0, half, 4),
			w.kpCard(1, width-half, 4))
		bottom := w.kpCard(2, width, 4)
		out := lipgloss.JoinVertical(lipgloss.Left, top, bottom)
		return lipgloss.NewStyle().MaxHeight(height).Render(out)
	}

	third := width / 3
	out := lipgloss.JoinHorizontal(lipgloss.Top,
		w.kpCard(0, third, height),
		w.kpCard(1, third, height),
		w.kpCard(2, width-2*third, height))
	return out
}

// kpCard renders one KPI card and marks its hover zone.
func (w *KPIWidget) kpCard(i, width, height int) string {
	k := kpKinds[i]
	s := w.sheet

	frame := s.KPICard(k.kind)
	title := s.KPITitle
	if w.hovered == k.kind {
		frame = s.KPICardHover(k.kind)
		title = title.Bold(true)
	}

	inner := innerWidth(frame, width)
	body := title.Render(components.Truncate(k.label, inner, "…")) + "\n" +
		s.KPIValue.Render(components.Truncate(w.kpValue(k.kind), inner, "…"))

	return w.zm.Mark("kpi:"+k.kind, renderCard(frame, body, width, height))
}

func (w *KPIWidget) kpValue(kind string) string {
	switch kind {
	case "sales":
		return sales.FormatAmount(w.view.TotalSales())
	case "orders":
		return sales.FormatCount(w.view.OrderCount())
	case "avg-value":
		return sales.FormatAmount(w.view.AvgOrderValue())
	}
	return ""
}

// compile-time check that KPIWidget implements app.Widget.
var _ app.Widget = (*KPIWidget)(nil)
