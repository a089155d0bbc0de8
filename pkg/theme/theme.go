// Package theme defines the color palettes behind the dashboard's
// presentation layer. A Theme is pure data: every visual rule in
// pkg/styles is compiled from the active theme's hex colors.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the dashboard.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#f7fafc"
	Foreground string // hex color
	Dim        string // de-emphasized text
	Accent     string // highlights, focused elements

	// Header banner
	HeaderStart  string // left end of the banner gradient
	HeaderEnd    string // right end of the banner gradient
	HeaderAccent string // accent rule under the banner
	HeaderText   string // banner title/subtitle text

	// Cards and panels
	Border      string // unfocused card borders
	BorderFocus string // focused card border
	BorderHover string // hovered card border (the "lift")
	Title       string // card title text

	// KPI card accents, one per metric
	KPISales    string
	KPIOrders   string
	KPIAvgValue string

	// Charts
	ChartLine string // trend line / sparkline
	ChartBar  string // category bars
	ChartAlt  string // city bars
	ChartGrid string // axis labels and chart chrome

	// Chat panel
	InputBorder string // idle text input border
	InputFocus  string // focused text input border + glow
	Send        string // send control
	SendBusy    string // send control while a question is evaluated
	Response    string // response text

	// Status colors (order-status distribution, load errors)
	StatusOK      string
	StatusWarn    string
	StatusError   string
	StatusUnknown string
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDashboardTheme()
}

// Get returns a named theme, falling back to the dashboard theme if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["dashboard"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a theme to the registry under its lowercase name,
// replacing any existing theme of the same name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
