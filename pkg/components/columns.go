package components

import (
	"math"
	"strings"
)

// Vertical fill glyphs for the top cell of a column, 1/8 through 7/8.
var columnEighths = [7]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// ColumnChart renders values as vertical columns filling a width x height
// cell area, scaled so the largest value reaches the top row. Each value
// receives an equal share of the width; shares of 2+ cells keep a
// one-cell gap between columns. Partial cell tops use eighth-block
// glyphs for sub-cell precision. Negative values clamp to zero.
//
// The result has exactly height lines of exactly width visible cells,
// so callers can overlay it into a card without re-measuring.
func ColumnChart(values []float64, width, height int, color string) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	blank := strings.Repeat(" ", width)
	if len(values) == 0 {
		rows := make([]string, height)
		for i := range rows {
			rows[i] = blank
		}
		return strings.Join(rows, "\n")
	}

	// Show the most recent values if there are more than columns fit.
	points := values
	if len(points) > width {
		points = points[len(points)-width:]
	}

	per := width / len(points)
	if per < 1 {
		per = 1
	}
	barW := per
	if per > 1 {
		barW = per - 1 // gap between columns
	}

	_, hi := minMax(points)
	if hi <= 0 {
		hi = 1
	}

	// Fill level per column, in eighth-cell units.
	units := make([]int, len(points))
	total := height * 8
	for i, v := range points {
		if v < 0 {
			v = 0
		}
		u := int(math.Round(v / hi * float64(total)))
		if u > total {
			u = total
		}
		units[i] = u
	}

	fg := Fg(color)
	reset := ""
	if fg != "" {
		reset = Reset()
	}

	// Render top to bottom. Row r (0 = top) covers units (height-1-r)*8+1 .. (height-r)*8.
	var rows []string
	for r := 0; r < height; r++ {
		floor := (height - 1 - r) * 8
		var b strings.Builder
		used := 0
		for i, u := range units {
			cell := ' '
			switch {
			case u >= floor+8:
				cell = '█'
			case u > floor:
				cell = columnEighths[u-floor-1]
			}
			seg := strings.Repeat(string(cell), barW)
			if per > 1 && i < len(units)-1 {
				seg += " "
			}
			b.WriteString(seg)
			used += VisibleWidth(seg)
			if used >= width {
				break
			}
		}
		line := b.String()
		if VisibleWidth(line) > width {
			line = Truncate(line, width, "")
		}
		line = Pad(line, width, AlignLeft)
		if fg != "" {
			line = fg + line + reset
		}
		rows = append(rows, line)
	}

	return strings.Join(rows, "\n")
}
