// Package styles compiles the dashboard's visual contract into
// lipgloss declarations. Every panel, card, and control on screen
// draws from one Sheet, produced from the active theme and the
// current terminal width. Sheets are pure values: compiling the same
// theme at the same width always yields the same styles.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/salespulse/salespulse/pkg/layout"
	"github.com/salespulse/salespulse/pkg/theme"
)

// NarrowWidth is the column threshold below which the dashboard
// collapses to its stacked arrangement.
const NarrowWidth = layout.NarrowWidth

// Sheet holds the compiled style declarations for one terminal width.
type Sheet struct {
	// Narrow reports whether the compact arrangement applies.
	Narrow bool

	// Header is the page banner: bold text over the gradient, with an
	// accent rule along the bottom edge.
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// Filter panel and its per-dimension groups.
	FilterPanel lipgloss.Style
	FilterItem  lipgloss.Style
	FilterLabel lipgloss.Style

	// Selection control restyling, replacing the picker's defaults.
	SelectControl     lipgloss.Style
	SelectValue       lipgloss.Style
	SelectPlaceholder lipgloss.Style
	SelectOption      lipgloss.Style
	SelectChosen      lipgloss.Style

	// KPI card interior text.
	KPITitle lipgloss.Style
	KPIValue lipgloss.Style

	// Graph cards.
	GraphCard      lipgloss.Style
	GraphCardHover lipgloss.Style
	GraphTitle     lipgloss.Style
	GraphTitleHot  lipgloss.Style

	// Chat panel: question input, send control, response area.
	ChatPanel    lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Send         lipgloss.Style
	SendBusy     lipgloss.Style
	Response     lipgloss.Style

	th   theme.Theme
	card lipgloss.Style
	rule lipgloss.Style
}

// Compile builds the Sheet for a theme at a terminal width. A width of
// zero (size not yet known) compiles the wide arrangement.
func Compile(t theme.Theme, width int) Sheet {
	return CompileAt(t, width, NarrowWidth)
}

// CompileAt is Compile with a custom breakpoint, for configurations
// that override the default.
func CompileAt(t theme.Theme, width, breakpoint int) Sheet {
	if breakpoint <= 0 {
		breakpoint = NarrowWidth
	}
	narrow := width > 0 && width <= breakpoint

	pad := 2
	if narrow {
		pad = 1
	}

	border := lipgloss.Color(t.Border)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, pad)

	s := Sheet{
		Narrow: narrow,
		th:     t,
		card:   card,
		rule:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
	}

	s.Header = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(t.HeaderAccent)).
		Padding(0, pad)
	s.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.HeaderText))

	s.FilterPanel = card
	s.FilterItem = lipgloss.NewStyle().Padding(0, 1)
	s.FilterLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Title))

	s.SelectControl = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border)
	s.SelectValue = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground))
	s.SelectPlaceholder = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))
	s.SelectOption = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground))
	s.SelectChosen = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Accent))

	s.KPITitle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))
	s.KPIValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Foreground))

	s.GraphCard = card
	s.GraphCardHover = card.BorderForeground(lipgloss.Color(t.BorderHover))
	s.GraphTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Title))
	s.GraphTitleHot = s.GraphTitle.Foreground(lipgloss.Color(t.BorderHover))

	s.ChatPanel = card
	s.Input = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.InputBorder)).
		Padding(0, pad-1)
	s.InputFocused = s.Input.BorderForeground(lipgloss.Color(t.InputFocus))
	s.Send = lipgloss.NewStyle().
		Bold(true).
		Padding(0, pad+1).
		Foreground(lipgloss.Color(t.HeaderText)).
		Background(lipgloss.Color(t.Send))
	s.SendBusy = s.Send.Background(lipgloss.Color(t.SendBusy))
	s.Response = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Response)).
		Padding(0, 1)

	return s
}

// KPICard returns the card style for one KPI metric. The top edge
// carries the metric's accent color. Unknown kinds keep the base
// border, matching nothing rather than failing.
func (s Sheet) KPICard(kind string) lipgloss.Style {
	return s.card.BorderTopForeground(lipgloss.Color(theme.Accent(s.th, kind)))
}

// KPICardHover is KPICard with the lifted hover border.
func (s Sheet) KPICardHover(kind string) lipgloss.Style {
	return s.KPICard(kind).
		BorderForeground(lipgloss.Color(s.th.BorderHover)).
		BorderTopForeground(lipgloss.Color(theme.Accent(s.th, kind)))
}

// FocusedCard returns a card with the focus border, used for whichever
// widget owns the keyboard.
func (s Sheet) FocusedCard() lipgloss.Style {
	return s.card.BorderForeground(lipgloss.Color(s.th.BorderFocus))
}

// Rule renders a thin horizontal rule spanning width columns.
func (s Sheet) Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return s.rule.Render(strings.Repeat("─", width))
}

// Theme returns the theme this sheet was compiled from.
func (s Sheet) Theme() theme.Theme {
	return s.th
}
