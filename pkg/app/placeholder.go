package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaceholderWidget is a minimal widget that records the events it
// receives and renders its title and dimensions. It stands in for real
// panels in layout and navigation tests.
type PlaceholderWidget struct {
	id    string
	title string

	// LastEvent is the most recent broadcast message, for assertions.
	LastEvent tea.Msg
}

// NewPlaceholder creates a PlaceholderWidget with the given id and title.
func NewPlaceholder(id, title string) *PlaceholderWidget {
	return &PlaceholderWidget{id: id, title: title}
}

func (w *PlaceholderWidget) ID() string    { return w.id }
func (w *PlaceholderWidget) Title() string { return w.title }

// Update records the event and returns no command.
func (w *PlaceholderWidget) Update(msg tea.Msg) tea.Cmd {
	w.LastEvent = msg
	return nil
}

// View renders the title and the dimensions it was asked for.
func (w *PlaceholderWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{w.title, fmt.Sprintf("%dx%d", width, height)}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

// MinSize returns the minimum dimensions for the placeholder.
func (w *PlaceholderWidget) MinSize() (int, int) {
	return 10, 3
}

// HandleKey is a no-op for the placeholder.
func (w *PlaceholderWidget) HandleKey(_ tea.KeyMsg) tea.Cmd {
	return nil
}
