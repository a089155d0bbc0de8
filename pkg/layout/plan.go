package layout

// NarrowWidth is the responsive breakpoint in terminal columns. At 8px
// per cell it corresponds to the 768px viewport threshold the page
// re-flows at.
const NarrowWidth = 96

// Plan captures the arrangement decisions that depend on the terminal
// width. All widgets render from the same plan so the page re-flows as
// one unit.
type Plan struct {
	Narrow       bool
	FilterCols   int // filter items per row (3 wide, 1 narrow)
	KPICols      int // KPI cards per row (3 wide, 2 narrow)
	GraphCols    int // graph cards per row (2 wide, 1 narrow)
	PanelPadding int // horizontal padding inside panels (shrinks narrow)
}

// PlanFor returns the arrangement for a terminal width. Positive
// widths at or below NarrowWidth use the stacked narrow arrangement;
// zero (size not yet known) plans wide.
func PlanFor(width int) Plan {
	return PlanAt(width, NarrowWidth)
}

// PlanAt is PlanFor with a custom breakpoint, for configurations that
// override the default.
func PlanAt(width, breakpoint int) Plan {
	if breakpoint <= 0 {
		breakpoint = NarrowWidth
	}
	if width > 0 && width <= breakpoint {
		return Plan{
			Narrow:       true,
			FilterCols:   1,
			KPICols:      2,
			GraphCols:    1,
			PanelPadding: 1,
		}
	}
	return Plan{
		Narrow:       false,
		FilterCols:   3,
		KPICols:      3,
		GraphCols:    2,
		PanelPadding: 2,
	}
}

// Columns splits area into count equal-width columns with the given
// spacing. A convenience wrapper over Split for card rows.
func Columns(area Rect, count, spacing int) []Rect {
	if count <= 0 {
		return nil
	}
	cons := make([]Constraint, count)
	for i := range cons {
		cons[i] = Fill(1)
	}
	return Split(area, Horizontal, spacing, cons...)
}
