// Package components provides the chart and text primitives the
// dashboard cards are built from: ANSI-aware string helpers, a one-row
// sparkline, a vertical column chart for the monthly trend, and a
// labeled horizontal bar chart used by the top-N and status cards.
// Components render plain strings; card chrome (borders, padding,
// accents) is applied by pkg/styles.
package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Align controls horizontal text alignment within a cell.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// VisibleWidth returns the width of s in terminal cells, ignoring ANSI
// escape sequences and counting wide runes as 2.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, appending tail if a
// cut occurs. The tail counts toward maxWidth.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// Pad pads s with spaces to exactly width visible cells using the given
// alignment. Strings already at or beyond width are returned unchanged.
func Pad(s string, width int, align Align) string {
	vis := VisibleWidth(s)
	if vis >= width {
		return s
	}
	gap := width - vis
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Wrap word-wraps s at width, preserving ANSI sequences, and returns the
// resulting lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// Fg returns an ANSI true-color foreground escape for a "#RRGGBB" hex
// color, or "" if the input is empty or malformed.
func Fg(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// colorize wraps s in a foreground color and a reset. No-op for empty or
// invalid colors.
func colorize(s, hex string) string {
	fg := Fg(hex)
	if fg == "" {
		return s
	}
	return fg + s + Reset()
}

// parseHex parses "#RRGGBB" or "RRGGBB" into r, g, b components.
func parseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}

// StripANSI removes ANSI escape sequences. Used by tests to assert on
// visible content.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
