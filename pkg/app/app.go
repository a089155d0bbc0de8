package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/salespulse/salespulse/pkg/layout"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/styles"
	"github.com/salespulse/salespulse/pkg/theme"
)

// Config holds the root model's runtime settings.
type Config struct {
	// Refresh is how often the report is reloaded. Zero disables the
	// reload ticker.
	Refresh time.Duration
	// Loader re-reads the order report. Nil disables reloading.
	Loader func() (*sales.Dataset, error)
	// Zones is the mouse hit-zone manager shared with widgets that
	// mark sub-zones (KPI cards, the send control). Nil creates one.
	Zones *zone.Manager
	// NarrowWidth overrides the responsive breakpoint in columns.
	// Zero keeps the built-in threshold.
	NarrowWidth int
}

// DefaultConfig returns the default application settings.
func DefaultConfig() Config {
	return Config{Refresh: 5 * time.Minute}
}

// AppModel is the bubbletea root model. It owns the dataset, the
// active filter, the compiled style sheet, and the widget registry,
// and broadcasts events so widgets never reach into each other.
type AppModel struct {
	cfg Config

	widgets       map[string]Widget
	widgetOrder   []string
	focusedWidget string
	hoveredWidget string

	width       int
	height      int
	layoutDirty bool

	th    theme.Theme
	sheet styles.Sheet
	plan  layout.Plan

	dataset *sales.Dataset
	filter  sales.Filter
	view    sales.View

	zm *zone.Manager
}

// NewAppModel creates the root model. Widgets render in the order
// given; the first widget after the header receives initial focus.
func NewAppModel(cfg Config, t theme.Theme, ds *sales.Dataset, widgets ...Widget) AppModel {
	m := AppModel{
		cfg:     cfg,
		widgets: make(map[string]Widget, len(widgets)),
		th:      t,
		dataset: ds,
		zm:      cfg.Zones,
	}
	if m.zm == nil {
		m.zm = zone.New()
	}
	for _, w := range widgets {
		m.widgets[w.ID()] = w
		m.widgetOrder = append(m.widgetOrder, w.ID())
	}
	for _, id := range m.widgetOrder {
		if id != "header" {
			m.focusedWidget = id
			break
		}
	}

	m.sheet = styles.Compile(m.th, 0)
	m.plan = layout.PlanFor(0)
	if m.dataset != nil {
		m.view = m.dataset.Apply(m.filter)
	}
	m.broadcast(StyleUpdateEvent{Sheet: m.sheet, Plan: m.plan})
	m.broadcast(ViewUpdateEvent{View: m.view, Dataset: m.dataset})
	m.broadcast(WidgetFocusEvent{WidgetID: m.focusedWidget})
	return m
}

// Zones returns the mouse hit-zone manager widgets mark their cards
// with.
func (m *AppModel) Zones() *zone.Manager { return m.zm }

// Width returns the current terminal width.
func (m AppModel) Width() int { return m.width }

// Height returns the current terminal height.
func (m AppModel) Height() int { return m.height }

// LayoutDirty reports whether a reflow is pending.
func (m AppModel) LayoutDirty() bool { return m.layoutDirty }

// FocusedWidget returns the ID of the widget owning the keyboard.
func (m AppModel) FocusedWidget() string { return m.focusedWidget }

// HoveredWidget returns the ID of the widget under the cursor.
func (m AppModel) HoveredWidget() string { return m.hoveredWidget }

// CurrentView returns the current filtered view, for tests and the
// snapshot path.
func (m AppModel) CurrentView() sales.View { return m.view }

// Init starts the reload ticker when configured.
func (m AppModel) Init() tea.Cmd {
	if m.cfg.Refresh > 0 && m.cfg.Loader != nil {
		return TickCmd(m.cfg.Refresh)
	}
	return nil
}

// Update routes messages: size and theme recompile the sheet, data and
// filter changes rebuild the view, keys go to navigation or the
// focused widget, mouse motion drives hover. Everything else is
// broadcast as-is.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, m.broadcast(StyleUpdateEvent{Sheet: m.sheet, Plan: m.plan})

	case ThemeChangeEvent:
		m.th = theme.Get(msg.Theme)
		m.sheet = styles.CompileAt(m.th, m.width, m.cfg.NarrowWidth)
		return m, m.broadcast(StyleUpdateEvent{Sheet: m.sheet, Plan: m.plan})

	case FilterChangedEvent:
		m.filter = msg.Filter
		if m.dataset != nil {
			m.view = m.dataset.Apply(m.filter)
		}
		return m, m.broadcast(ViewUpdateEvent{View: m.view, Dataset: m.dataset})

	case DataUpdateEvent:
		if msg.Err != nil {
			slog.Warn("report reload failed", "error", msg.Err)
			return m, nil
		}
		m.dataset = msg.Dataset
		m.view = m.dataset.Apply(m.filter)
		return m, m.broadcast(ViewUpdateEvent{View: m.view, Dataset: m.dataset})

	case AskEvent:
		cmd := m.broadcast(msg)
		return m, tea.Batch(cmd, AnalyzeCmd(msg.Question, m.view, m.dataset))

	case TickEvent:
		cmds := []tea.Cmd{m.broadcast(msg)}
		if m.cfg.Loader != nil {
			cmds = append(cmds, DataFetchCmd(m.cfg.Loader))
		}
		if m.cfg.Refresh > 0 {
			cmds = append(cmds, TickCmd(m.cfg.Refresh))
		}
		return m, tea.Batch(cmds...)

	case WidgetFocusEvent:
		m.FocusWidget(msg.WidgetID)
		return m, m.broadcast(WidgetFocusEvent{WidgetID: m.focusedWidget})

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, m.broadcast(msg)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if s == "ctrl+c" || (s == "q" && m.focusedWidget != "chat") {
		return m, tea.Quit
	}

	switch s {
	case "tab":
		m.CycleFocusForward()
		if m.focusedWidget == "header" {
			m.CycleFocusForward()
		}
		return m, m.broadcast(WidgetFocusEvent{WidgetID: m.focusedWidget})
	case "shift+tab":
		m.CycleFocusBackward()
		if m.focusedWidget == "header" {
			m.CycleFocusBackward()
		}
		return m, m.broadcast(WidgetFocusEvent{WidgetID: m.focusedWidget})
	}

	if w, ok := m.widgets[m.focusedWidget]; ok {
		return m, w.HandleKey(msg)
	}
	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	hovered := ""
	for _, id := range m.widgetOrder {
		if id == "header" {
			continue
		}
		if z := m.zm.Get(id); z != nil && z.InBounds(msg) {
			hovered = id
			break
		}
	}

	// Widgets see the raw mouse event too, for their own sub-zones.
	cmds := []tea.Cmd{m.broadcast(msg)}
	if hovered != m.hoveredWidget {
		m.hoveredWidget = hovered
		cmds = append(cmds, m.broadcast(WidgetHoverEvent{WidgetID: hovered}))
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && hovered != "" {
		m.FocusWidget(hovered)
		cmds = append(cmds, m.broadcast(WidgetFocusEvent{WidgetID: m.focusedWidget}))
	}
	return m, tea.Batch(cmds...)
}

// Resize applies a new terminal size and recompiles the sheet and
// plan. Exposed for the one-shot snapshot path.
func (m *AppModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.layoutDirty = true
	m.sheet = styles.CompileAt(m.th, width, m.cfg.NarrowWidth)
	m.plan = layout.PlanAt(width, m.cfg.NarrowWidth)
}

// broadcast delivers msg to every widget and batches their follow-up
// commands.
func (m *AppModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.widgetOrder {
		if cmd := m.widgets[id].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// View composes the dashboard: header, filter panel, KPI row, the
// graph grid, and the chat panel, arranged per the current plan.
func (m AppModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "measuring terminal..."
	}

	area := layout.Rect{Width: m.width, Height: m.height}
	rows := layout.Split(area, layout.Vertical, 0,
		layout.Length(m.heightOf("header")),
		layout.Length(m.heightOf("filters")),
		layout.Length(m.heightOf("kpi")),
		layout.Fill(1),
		layout.Length(m.heightOf("chat")),
	)

	parts := []string{
		m.renderWidget("header", rows[0]),
		m.renderWidget("filters", rows[1]),
		m.renderWidget("kpi", rows[2]),
		m.renderGraphs(rows[3]),
		m.renderWidget("chat", rows[4]),
	}

	return m.zm.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderGraphs lays out the four graph cards: a 2x2 grid when wide,
// one card per row when narrow.
func (m AppModel) renderGraphs(area layout.Rect) string {
	ids := []string{"trend", "categories", "cities", "status"}
	if m.plan.GraphCols <= 1 {
		rects := layout.Split(area, layout.Vertical, 0,
			layout.Fill(1), layout.Fill(1), layout.Fill(1), layout.Fill(1))
		lines := make([]string, 0, len(ids))
		for i, id := range ids {
			lines = append(lines, m.renderWidget(id, rects[i]))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rowRects := layout.Split(area, layout.Vertical, 0, layout.Fill(1), layout.Fill(1))
	var rendered []string
	for r, rowIDs := range [][]string{ids[:2], ids[2:]} {
		cells := layout.Columns(rowRects[r], 2, 0)
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderWidget(rowIDs[0], cells[0]),
			m.renderWidget(rowIDs[1], cells[1]))
		rendered = append(rendered, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m AppModel) renderWidget(id string, r layout.Rect) string {
	w, ok := m.widgets[id]
	if !ok || r.Empty() {
		return ""
	}
	return m.zm.Mark(id, w.View(r.Width, r.Height))
}

// heightOf returns the fixed row height for a widget, taken from its
// minimum size so widgets can grow when the plan collapses.
func (m AppModel) heightOf(id string) int {
	w, ok := m.widgets[id]
	if !ok {
		return 0
	}
	_, h := w.MinSize()
	return h
}
