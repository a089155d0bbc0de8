// Package app provides the Bubbletea application framework for
// salespulse. It defines the event types, root model, widget
// interface, and navigation logic that form the Elm-architecture
// skeleton; widgets stay decoupled by reacting to broadcast events
// instead of reaching into each other.
package app

import (
	"time"

	"github.com/salespulse/salespulse/pkg/layout"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/styles"
)

// DataUpdateEvent carries a freshly loaded order report back into the
// update loop.
type DataUpdateEvent struct {
	Dataset   *sales.Dataset
	Err       error // non-nil if the load failed
	Timestamp time.Time
}

// ViewUpdateEvent is broadcast to widgets whenever the filtered view
// changes, either from new data or a filter change.
type ViewUpdateEvent struct {
	View    sales.View
	Dataset *sales.Dataset
}

// StyleUpdateEvent is broadcast when the terminal size or theme
// changes; widgets re-render from the compiled sheet and plan.
type StyleUpdateEvent struct {
	Sheet styles.Sheet
	Plan  layout.Plan
}

// TickEvent is sent periodically to drive report reloading.
type TickEvent struct {
	Time time.Time
}

// FilterChangedEvent requests that the active filter be replaced.
type FilterChangedEvent struct {
	Filter sales.Filter
}

// AskEvent submits a free-text question about the current view.
type AskEvent struct {
	Question string
}

// AnswerEvent delivers the analysis of a submitted question.
type AnswerEvent struct {
	Question string
	Answer   string
}

// ThemeChangeEvent switches the active color theme.
type ThemeChangeEvent struct {
	Theme string
}

// WidgetFocusEvent announces the widget that now owns the keyboard.
type WidgetFocusEvent struct {
	WidgetID string
}

// WidgetHoverEvent announces the widget under the mouse cursor. An
// empty WidgetID means the cursor left all hit zones.
type WidgetHoverEvent struct {
	WidgetID string
}
