package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/salespulse/salespulse/pkg/styles"
)

// grFrame picks a graph card's border: hover lifts it, focus marks the
// keyboard owner, otherwise the base card.
func grFrame(s styles.Sheet, hovered, focused bool) lipgloss.Style {
	switch {
	case hovered:
		return s.GraphCardHover
	case focused:
		return s.FocusedCard()
	default:
		return s.GraphCard
	}
}

// grTitle picks a graph card's title style to match its frame.
func grTitle(s styles.Sheet, hovered bool) lipgloss.Style {
	if hovered {
		return s.GraphTitleHot
	}
	return s.GraphTitle
}
