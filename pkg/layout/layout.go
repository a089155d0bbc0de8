// Package layout splits rectangular terminal areas into the dashboard's
// regions: banner, filter row, KPI row, graph grid, and chat panel. It
// provides a small declarative splitter (fixed, percentage, and fill
// constraints) and the responsive plan that re-flows the page below the
// narrow breakpoint.
package layout

// Rect is a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner returns r shrunk by margin on all sides, clamped at zero size.
func (r Rect) Inner(margin int) Rect {
	if margin <= 0 {
		return r
	}
	out := Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Direction selects the axis a split runs along.
type Direction int

const (
	// Horizontal splits left-to-right (constraints control width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (constraints control height).
	Vertical
)

// Constraint describes how much of the axis one region receives.
type Constraint struct {
	kind  constraintKind
	value int
}

type constraintKind int

const (
	kindLength constraintKind = iota
	kindPercent
	kindFill
)

// Length allocates exactly n cells.
func Length(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{kind: kindLength, value: n}
}

// Percent allocates p percent of the available space (clamped to 0-100).
func Percent(p int) Constraint {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return Constraint{kind: kindPercent, value: p}
}

// Fill distributes leftover space proportional to weight; weight 0 counts
// as 1.
func Fill(weight int) Constraint {
	if weight <= 0 {
		weight = 1
	}
	return Constraint{kind: kindFill, value: weight}
}

// Split divides area along dir into one region per constraint, with
// spacing cells between adjacent regions. Fixed and percentage
// allocations are taken first; Fill regions share whatever remains by
// weight, with the last Fill absorbing rounding. Over-committed fixed
// allocations are shrunk proportionally so regions never overflow the
// area.
func Split(area Rect, dir Direction, spacing int, constraints ...Constraint) []Rect {
	n := len(constraints)
	if n == 0 {
		return nil
	}
	if spacing < 0 {
		spacing = 0
	}

	total := area.Width
	if dir == Vertical {
		total = area.Height
	}
	avail := total - spacing*(n-1)
	if avail < 0 {
		avail = 0
	}

	sizes := make([]int, n)
	fixed := 0
	fillWeight := 0
	for i, c := range constraints {
		switch c.kind {
		case kindLength:
			sizes[i] = c.value
			fixed += c.value
		case kindPercent:
			sizes[i] = avail * c.value / 100
			fixed += sizes[i]
		case kindFill:
			fillWeight += c.value
		}
	}

	if fixed > avail && fixed > 0 {
		// Shrink fixed regions proportionally to fit.
		for i, c := range constraints {
			if c.kind != kindFill {
				sizes[i] = sizes[i] * avail / fixed
			}
		}
		fixed = 0
		for i, c := range constraints {
			if c.kind != kindFill {
				fixed += sizes[i]
			}
		}
	}

	if fillWeight > 0 {
		rest := avail - fixed
		if rest < 0 {
			rest = 0
		}
		given := 0
		last := -1
		for i, c := range constraints {
			if c.kind == kindFill {
				last = i
			}
		}
		for i, c := range constraints {
			if c.kind != kindFill {
				continue
			}
			if i == last {
				sizes[i] = rest - given
			} else {
				sizes[i] = rest * c.value / fillWeight
				given += sizes[i]
			}
		}
	}

	out := make([]Rect, n)
	pos := 0
	for i := range constraints {
		if dir == Horizontal {
			out[i] = Rect{X: area.X + pos, Y: area.Y, Width: sizes[i], Height: area.Height}
		} else {
			out[i] = Rect{X: area.X, Y: area.Y + pos, Width: area.Width, Height: sizes[i]}
		}
		pos += sizes[i] + spacing
	}
	return out
}
