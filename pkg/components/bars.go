package components

import (
	"math"
	"strings"
)

// Horizontal fill glyphs for the boundary cell of a bar, 1/8 through 7/8.
var barEighths = [7]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// BarRow is one labeled entry in a horizontal bar chart.
type BarRow struct {
	Label string
	Value float64
}

// BarChartOptions configures BarChart rendering.
type BarChartOptions struct {
	// BarColor is the hex color for every bar unless RowColors is set.
	BarColor string
	// RowColors, when non-empty, colors row i with RowColors[i%len].
	RowColors []string
	// MaxRows caps the number of rows rendered (0 = no cap).
	MaxRows int
	// FormatValue renders the right-aligned value column. Nil hides the
	// value column entirely.
	FormatValue func(float64) string
}

// BarChart renders rows as horizontal bars scaled so the largest value
// spans the available bar area, with sub-cell precision at the bar tip.
// Layout per line: left-aligned label column, bar, right-aligned value
// column. Every line is exactly width visible cells. Rows with negative
// values render as zero-length bars.
func BarChart(rows []BarRow, width int, opts BarChartOptions) string {
	if width <= 0 || len(rows) == 0 {
		return ""
	}
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		rows = rows[:opts.MaxRows]
	}

	// Value column: wide enough for the longest formatted value.
	valW := 0
	vals := make([]string, len(rows))
	if opts.FormatValue != nil {
		for i, r := range rows {
			vals[i] = opts.FormatValue(r.Value)
			if w := VisibleWidth(vals[i]); w > valW {
				valW = w
			}
		}
		valW++ // gap before the value column
	}

	// Label column: longest label, capped at 40% of the width.
	labelW := 0
	for _, r := range rows {
		if w := VisibleWidth(r.Label); w > labelW {
			labelW = w
		}
	}
	if maxLabel := width * 2 / 5; labelW > maxLabel {
		labelW = maxLabel
	}

	barArea := width - labelW - 1 - valW
	if barArea < 1 {
		barArea = 1
	}

	hi := 0.0
	for _, r := range rows {
		if r.Value > hi {
			hi = r.Value
		}
	}
	if hi <= 0 {
		hi = 1
	}

	var out []string
	for i, r := range rows {
		label := Pad(Truncate(r.Label, labelW, "…"), labelW, AlignLeft)

		v := r.Value
		if v < 0 {
			v = 0
		}
		units := int(math.Round(v / hi * float64(barArea*8)))
		full := units / 8
		part := units % 8

		var bar strings.Builder
		bar.WriteString(strings.Repeat("█", full))
		if part > 0 {
			bar.WriteRune(barEighths[part-1])
		}

		color := opts.BarColor
		if len(opts.RowColors) > 0 {
			color = opts.RowColors[i%len(opts.RowColors)]
		}

		line := label + " " + Pad(colorize(bar.String(), color), barArea, AlignLeft)
		if opts.FormatValue != nil {
			line += Pad(vals[i], valW, AlignRight)
		}
		out = append(out, Pad(Truncate(line, width, ""), width, AlignLeft))
	}

	return strings.Join(out, "\n")
}
