package widgets

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/salespulse/salespulse/pkg/app"
	"github.com/salespulse/salespulse/pkg/components"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/styles"
)

// flOptionRows is how many options a selection list shows at once.
const flOptionRows = 4

// FilterWidget is the filter panel: one multi-select group per
// dimension (category, state, status). Toggling a value emits a
// FilterChangedEvent; an empty group places no constraint on its
// dimension.
type FilterWidget struct {
	sheet   styles.Sheet
	zm      *zone.Manager
	focused bool

	dims   [3]flDim
	active int
	cursor int
	offset int
}

type flDim struct {
	label       string
	placeholder string
	options     []string
	selected    map[string]bool
}

// NewFilters creates the filter panel. The zone manager registers the
// per-group click targets.
func NewFilters(zm *zone.Manager) *FilterWidget {
	w := &FilterWidget{zm: zm}
	labels := [3][2]string{
		{"Category", "All categories"},
		{"State", "All states"},
		{"Status", "All statuses"},
	}
	for i, l := range labels {
		w.dims[i] = flDim{label: l[0], placeholder: l[1], selected: make(map[string]bool)}
	}
	return w
}

// ID returns the unique identifier for this widget.
func (w *FilterWidget) ID() string { return "filters" }

// Title returns the display name for this widget.
func (w *FilterWidget) Title() string { return "Filters" }

// MinSize returns the minimum width and height this widget requires.
func (w *FilterWidget) MinSize() (int, int) {
	// A group is its label plus a bordered box: summary only when
	// collapsed, summary and options when expanded.
	expanded := 1 + 2 + 1 + flOptionRows
	collapsed := 1 + 2 + 1
	if w.sheet.Narrow {
		// Stacked, with only the active group expanded.
		return 30, expanded + 2*collapsed + 2
	}
	return 60, expanded + 2
}

// Update tracks styles, refreshes the option lists from the dataset,
// and handles group clicks.
func (w *FilterWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.StyleUpdateEvent:
		w.sheet = msg.Sheet

	case app.ViewUpdateEvent:
		if msg.Dataset != nil {
			w.dims[0].options = msg.Dataset.Categories
			w.dims[1].options = msg.Dataset.States
			w.dims[2].options = msg.Dataset.Statuses
			w.clampCursor()
		}

	case app.WidgetFocusEvent:
		w.focused = msg.WidgetID == w.ID()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		for i := range w.dims {
			if w.zm.Get(flZoneID(i)).InBounds(msg) && i != w.active {
				w.active = i
				w.cursor = 0
				w.offset = 0
				break
			}
		}
	}
	return nil
}

// HandleKey navigates the groups and toggles selections while the
// panel is focused.
func (w *FilterWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "left", "h":
		w.active = (w.active + 2) % 3
		w.cursor, w.offset = 0, 0
	case "right", "l":
		w.active = (w.active + 1) % 3
		w.cursor, w.offset = 0, 0
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
			if w.cursor < w.offset {
				w.offset = w.cursor
			}
		}
	case "down", "j":
		if w.cursor < len(w.dims[w.active].options)-1 {
			w.cursor++
			if w.cursor >= w.offset+flOptionRows {
				w.offset = w.cursor - flOptionRows + 1
			}
		}
	case "enter", " ":
		d := &w.dims[w.active]
		if w.cursor < len(d.options) {
			v := d.options[w.cursor]
			if d.selected[v] {
				delete(d.selected, v)
			} else {
				d.selected[v] = true
			}
			return w.filterCmd()
		}
	case "x":
		w.dims[w.active].selected = make(map[string]bool)
		return w.filterCmd()
	case "c":
		for i := range w.dims {
			w.dims[i].selected = make(map[string]bool)
		}
		return w.filterCmd()
	}
	return nil
}

// View renders the groups side by side, or stacked with only the
// active group expanded when the narrow arrangement applies.
func (w *FilterWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := w.sheet

	frame := s.FilterPanel
	if w.focused {
		frame = s.FocusedCard()
	}
	inner := innerWidth(frame, width)

	var body string
	if s.Narrow {
		var groups []string
		for i := range w.dims {
			groups = append(groups, w.flGroup(i, inner, i == w.active))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, groups...)
	} else {
		cell := inner / 3
		var groups []string
		for i := range w.dims {
			groups = append(groups, w.flGroup(i, cell-1, true))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, groups...)
	}

	return renderCard(frame, body, width, height)
}

// flGroup renders one dimension's label, selection summary, and (when
// expanded) its option list.
func (w *FilterWidget) flGroup(i, width int, expanded bool) string {
	if width <= 2 {
		return ""
	}
	s := w.sheet
	d := w.dims[i]

	label := s.FilterLabel.Render(d.label)
	if len(d.selected) > 0 {
		label += s.SelectChosen.Render(fmt.Sprintf(" (%d)", len(d.selected)))
	}

	lines := []string{w.flSummary(d, width)}
	if expanded {
		lines = append(lines, w.flOptions(i, width)...)
	}

	control := s.SelectControl
	if w.focused && i == w.active {
		control = control.BorderForeground(lipgloss.Color(s.Theme().InputFocus))
	}
	box := control.Width(width - 2).Render(strings.Join(lines, "\n"))

	return w.zm.Mark(flZoneID(i), lipgloss.JoinVertical(lipgloss.Left, label, box))
}

// flSummary renders the chosen values, or the placeholder when the
// group is unconstrained.
func (w *FilterWidget) flSummary(d flDim, width int) string {
	if len(d.selected) == 0 {
		return w.sheet.SelectPlaceholder.Render(components.Truncate(d.placeholder, width-2, "…"))
	}
	var chosen []string
	for _, opt := range d.options {
		if d.selected[opt] {
			chosen = append(chosen, opt)
		}
	}
	return w.sheet.SelectValue.Render(components.Truncate(strings.Join(chosen, ", "), width-2, "…"))
}

// flOptions renders the scrolling option window for one group.
func (w *FilterWidget) flOptions(i, width int) []string {
	s := w.sheet
	d := w.dims[i]

	offset := 0
	cursor := -1
	if i == w.active {
		offset = w.offset
		cursor = w.cursor
	}

	var rows []string
	for j := offset; j < len(d.options) && j < offset+flOptionRows; j++ {
		opt := d.options[j]
		marker := "  "
		if d.selected[opt] {
			marker = "✓ "
		}
		prefix := "  "
		if j == cursor && w.focused {
			prefix = "❯ "
		}
		line := components.Truncate(prefix+marker+opt, width-2, "…")
		if d.selected[opt] {
			rows = append(rows, s.SelectChosen.Render(line))
		} else {
			rows = append(rows, s.SelectOption.Render(line))
		}
	}
	for len(rows) < flOptionRows {
		rows = append(rows, "")
	}
	return rows
}

// filterCmd emits the panel's current constraints.
func (w *FilterWidget) filterCmd() tea.Cmd {
	f := sales.Filter{
		Categories: flChosen(w.dims[0]),
		States:     flChosen(w.dims[1]),
		Statuses:   flChosen(w.dims[2]),
	}
	return func() tea.Msg {
		return app.FilterChangedEvent{Filter: f}
	}
}

func flChosen(d flDim) []string {
	var out []string
	for _, opt := range d.options {
		if d.selected[opt] {
			out = append(out, opt)
		}
	}
	return out
}

func flZoneID(i int) string {
	return fmt.Sprintf("filters:%d", i)
}

func (w *FilterWidget) clampCursor() {
	n := len(w.dims[w.active].options)
	if w.cursor >= n {
		w.cursor = 0
		w.offset = 0
	}
}

// compile-time check that FilterWidget implements app.Widget.
var _ app.Widget = (*FilterWidget)(nil)
