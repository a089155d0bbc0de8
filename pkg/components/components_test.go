package components

import (
	"strings"
	"testing"
)

// --- text helpers ---

func TestVisibleWidthIgnoresANSI(t *testing.T) {
	colored := Fg("#667eea") + "sales" + Reset()
	if got := VisibleWidth(colored); got != 5 {
		t.Errorf("VisibleWidth(colored) = %d, want 5", got)
	}
}

func TestPadAlignments(t *testing.T) {
	cases := []struct {
		align Align
		want  string
	}{
		{AlignLeft, "ab  "},
		{AlignRight, "  ab"},
		{AlignCenter, " ab "},
	}
	for _, tc := range cases {
		if got := Pad("ab", 4, tc.align); got != tc.want {
			t.Errorf("Pad(%v) = %q, want %q", tc.align, got, tc.want)
		}
	}
}

func TestPadDoesNotShrink(t *testing.T) {
	if got := Pad("abcdef", 4, AlignLeft); got != "abcdef" {
		t.Errorf("Pad over-wide string = %q, want unchanged", got)
	}
}

func TestTruncateWithTail(t *testing.T) {
	if got := Truncate("Electronics", 6, "…"); VisibleWidth(got) != 6 {
		t.Errorf("Truncate width = %d, want 6 (%q)", VisibleWidth(got), got)
	}
	if got := Truncate("short", 10, "…"); got != "short" {
		t.Errorf("Truncate within limit = %q, want unchanged", got)
	}
}

func TestFgInvalidHex(t *testing.T) {
	if got := Fg("#zzz"); got != "" {
		t.Errorf("Fg(invalid) = %q, want empty", got)
	}
	if got := Fg(""); got != "" {
		t.Errorf("Fg(empty) = %q, want empty", got)
	}
}

// --- sparkline ---

func TestSparklineWidth(t *testing.T) {
	s := Sparkline([]float64{1, 2, 3, 4}, 10, "#667eea")
	if got := VisibleWidth(s); got != 10 {
		t.Errorf("sparkline width = %d, want 10", got)
	}
	// Newest value sits at the right edge after left padding.
	stripped := StripANSI(s)
	if !strings.HasSuffix(stripped, "█") {
		t.Errorf("expected max value block at right edge, got %q", stripped)
	}
}

func TestSparklineTakesMostRecent(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(i)
	}
	s := StripANSI(Sparkline(values, 8, ""))
	if len([]rune(s)) != 8 {
		t.Fatalf("sparkline rune count = %d, want 8", len([]rune(s)))
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	s := StripANSI(Sparkline([]float64{5, 5, 5}, 3, ""))
	for _, r := range s {
		if r != '▄' {
			t.Errorf("flat series should render mid-height blocks, got %q", s)
			break
		}
	}
}

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil, 5, "#667eea"); got != "     " {
		t.Errorf("empty sparkline = %q, want 5 spaces", got)
	}
}

// --- column chart ---

func TestColumnChartDimensions(t *testing.T) {
	chart := ColumnChart([]float64{10, 20, 30}, 12, 4, "#667eea")
	lines := strings.Split(chart, "\n")
	if len(lines) != 4 {
		t.Fatalf("column chart has %d lines, want 4", len(lines))
	}
	for i, line := range lines {
		if got := VisibleWidth(line); got != 12 {
			t.Errorf("line %d width = %d, want 12", i, got)
		}
	}
}

func TestColumnChartMaxReachesTop(t *testing.T) {
	chart := StripANSI(ColumnChart([]float64{1, 100}, 8, 3, ""))
	top := strings.Split(chart, "\n")[0]
	if !strings.Contains(top, "█") {
		t.Errorf("largest column should reach the top row, got %q", top)
	}
}

func TestColumnChartEmptyValues(t *testing.T) {
	chart := ColumnChart(nil, 6, 2, "")
	lines := strings.Split(chart, "\n")
	if len(lines) != 2 {
		t.Fatalf("empty chart has %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			t.Errorf("empty chart line should be blank, got %q", line)
		}
	}
}

// --- bar chart ---

func TestBarChartLineWidths(t *testing.T) {
	rows := []BarRow{
		{Label: "Kurta", Value: 120000},
		{Label: "Set", Value: 90000},
		{Label: "Western Dress", Value: 45000},
	}
	out := BarChart(rows, 40, BarChartOptions{BarColor: "#764ba2"})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("bar chart has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if got := VisibleWidth(line); got != 40 {
			t.Errorf("line %d width = %d, want 40", i, got)
		}
	}
}

func TestBarChartLargestValueLongestBar(t *testing.T) {
	rows := []BarRow{
		{Label: "a", Value: 100},
		{Label: "b", Value: 25},
	}
	out := StripANSI(BarChart(rows, 30, BarChartOptions{}))
	lines := strings.Split(out, "\n")
	count := func(s string) int { return strings.Count(s, "█") }
	if count(lines[0]) <= count(lines[1]) {
		t.Errorf("row with larger value should have the longer bar:\n%s", out)
	}
}

func TestBarChartMaxRows(t *testing.T) {
	rows := []BarRow{{Label: "a", Value: 1}, {Label: "b", Value: 2}, {Label: "c", Value: 3}}
	out := BarChart(rows, 20, BarChartOptions{MaxRows: 2})
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Errorf("MaxRows=2 rendered %d rows", got)
	}
}

func TestBarChartValueColumn(t *testing.T) {
	rows := []BarRow{{Label: "Mumbai", Value: 1234}}
	out := StripANSI(BarChart(rows, 30, BarChartOptions{
		FormatValue: func(v float64) string { return "1,234" },
	}))
	if !strings.HasSuffix(strings.Split(out, "\n")[0], "1,234") {
		t.Errorf("value column should be right-aligned at line end, got %q", out)
	}
}

func TestBarChartEmpty(t *testing.T) {
	if out := BarChart(nil, 20, BarChartOptions{}); out != "" {
		t.Errorf("empty rows should render empty string, got %q", out)
	}
}
