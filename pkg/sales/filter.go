package sales

// Filter narrows the dataset by category, state, and order status. An
// empty slice places no constraint on its dimension; dimensions combine
// with AND, values within a dimension with OR.
type Filter struct {
	Categories []string
	States     []string
	Statuses   []string
}

// Active reports whether any dimension is constrained.
func (f Filter) Active() bool {
	return len(f.Categories) > 0 || len(f.States) > 0 || len(f.Statuses) > 0
}

// Matches reports whether o passes every constrained dimension.
func (f Filter) Matches(o Order) bool {
	return matchDim(f.Categories, o.Category) &&
		matchDim(f.States, o.State) &&
		matchDim(f.Statuses, o.Status)
}

func matchDim(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// Apply produces the filtered view of the dataset.
func (d *Dataset) Apply(f Filter) View {
	if !f.Active() {
		return View{Orders: d.Orders}
	}
	var kept []Order
	for _, o := range d.Orders {
		if f.Matches(o) {
			kept = append(kept, o)
		}
	}
	return View{Orders: kept, Filtered: true}
}
