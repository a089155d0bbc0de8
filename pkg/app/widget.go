package app

import tea "github.com/charmbracelet/bubbletea"

// Widget is one panel of the dashboard. Widgets receive every event
// the root model broadcasts, render into the rectangle the layout
// assigns them, and may claim keys while focused.
type Widget interface {
	// ID returns the widget's unique identifier, also used as its
	// mouse hit-zone id.
	ID() string

	// Title returns the widget's display title.
	Title() string

	// Update receives broadcast events and returns an optional
	// follow-up command.
	Update(msg tea.Msg) tea.Cmd

	// View renders the widget at the given dimensions.
	View(width, height int) string

	// MinSize returns the smallest dimensions the widget renders
	// legibly at.
	MinSize() (int, int)

	// HandleKey receives key presses while the widget is focused.
	HandleKey(msg tea.KeyMsg) tea.Cmd
}
