package components

import (
	"math"
	"strings"
)

// sparkBlocks are the 8 vertical block levels of a sparkline cell.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values as a one-row sparkline of exactly width cells,
// colored with the given hex color. When there are more values than
// cells, only the most recent width values are shown; when there are
// fewer, the line is left-padded with spaces so the newest value always
// sits at the right edge. An empty input renders as width spaces.
func Sparkline(values []float64, width int, color string) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat(" ", width)
	}

	points := values
	if len(points) > width {
		points = points[len(points)-width:]
	}

	lo, hi := minMax(points)
	span := hi - lo

	var b strings.Builder
	for i := len(points); i < width; i++ {
		b.WriteByte(' ')
	}
	for _, v := range points {
		idx := 3 // flat series renders at mid-height
		if span > 0 {
			norm := (v - lo) / span
			idx = int(math.Round(norm * 7))
			if idx < 0 {
				idx = 0
			}
			if idx > 7 {
				idx = 7
			}
		}
		b.WriteRune(sparkBlocks[idx])
	}

	return colorize(b.String(), color)
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
