package sales

import (
	"sort"
	"strings"
)

// View is the order set currently visible on the dashboard: the full
// dataset, or the subset selected by the active filters. Every KPI,
// chart, and data question is answered against a View.
type View struct {
	Orders   []Order
	Filtered bool
}

// Empty reports whether no orders survive the active filters.
func (v View) Empty() bool {
	return len(v.Orders) == 0
}

// Scope names the data scope for user-facing messages.
func (v View) Scope() string {
	if v.Filtered {
		return "current filtered view"
	}
	return "overall data"
}

// --- KPIs ---

// TotalSales is the sum of Amount over the view.
func (v View) TotalSales() float64 {
	total := 0.0
	for _, o := range v.Orders {
		total += o.Amount
	}
	return total
}

// OrderCount is the number of orders in the view.
func (v View) OrderCount() int {
	return len(v.Orders)
}

// AvgOrderValue is TotalSales / OrderCount, or 0 for an empty view.
func (v View) AvgOrderValue() float64 {
	if len(v.Orders) == 0 {
		return 0
	}
	return v.TotalSales() / float64(len(v.Orders))
}

// --- aggregations ---

// Rank is one entry of a grouped aggregation.
type Rank struct {
	Name  string
	Sales float64
	Count int
}

// MonthlyTrend groups sales by month in chronological order.
func (v View) MonthlyTrend() []Rank {
	return v.groupBy(func(o Order) string { return o.Month }, byName)
}

// TopCategories returns the n categories with the highest sales,
// descending.
func (v View) TopCategories(n int) []Rank {
	return top(v.groupBy(func(o Order) string { return o.Category }, bySalesDesc), n)
}

// TopCities returns the n cities with the highest sales, descending.
func (v View) TopCities(n int) []Rank {
	return top(v.groupBy(func(o Order) string { return o.City }, bySalesDesc), n)
}

// TopStates returns the n states with the highest sales, descending.
func (v View) TopStates(n int) []Rank {
	return top(v.groupBy(func(o Order) string { return o.State }, bySalesDesc), n)
}

// StatusCounts groups orders by status, most frequent first.
func (v View) StatusCounts() []Rank {
	return v.groupBy(func(o Order) string { return o.Status }, byCountDesc)
}

// --- lookups used by the data-question widget ---

// SalesIn sums sales and counts orders where key(order) equals value.
func (v View) SalesIn(key func(Order) string, value string) (sales float64, count int) {
	for _, o := range v.Orders {
		if key(o) == value {
			sales += o.Amount
			count++
		}
	}
	return sales, count
}

// CategoriesMatching returns the distinct categories whose name contains
// the query, case-insensitively, along with their combined sales and
// order count.
func (v View) CategoriesMatching(query string) (names []string, sales float64, count int) {
	q := strings.ToLower(query)
	seen := map[string]bool{}
	for _, o := range v.Orders {
		if !strings.Contains(strings.ToLower(o.Category), q) {
			continue
		}
		sales += o.Amount
		count++
		if !seen[o.Category] {
			seen[o.Category] = true
			names = append(names, o.Category)
		}
	}
	sort.Strings(names)
	return names, sales, count
}

// HasValue reports whether key(order) equals value for any order in the
// view.
func (v View) HasValue(key func(Order) string, value string) bool {
	for _, o := range v.Orders {
		if key(o) == value {
			return true
		}
	}
	return false
}

// FindOrder looks up an order by exact ID within the view.
func (v View) FindOrder(id string) (Order, bool) {
	for _, o := range v.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// CountStatusContaining counts orders whose status contains the query,
// case-insensitively.
func (v View) CountStatusContaining(query string) int {
	q := strings.ToLower(query)
	n := 0
	for _, o := range v.Orders {
		if strings.Contains(strings.ToLower(o.Status), q) {
			n++
		}
	}
	return n
}

// --- grouping internals ---

type rankOrder int

const (
	byName rankOrder = iota
	bySalesDesc
	byCountDesc
)

func (v View) groupBy(key func(Order) string, order rankOrder) []Rank {
	sums := map[string]*Rank{}
	for _, o := range v.Orders {
		k := key(o)
		r, ok := sums[k]
		if !ok {
			r = &Rank{Name: k}
			sums[k] = r
		}
		r.Sales += o.Amount
		r.Count++
	}

	out := make([]Rank, 0, len(sums))
	for _, r := range sums {
		out = append(out, *r)
	}

	sort.Slice(out, func(i, j int) bool {
		switch order {
		case bySalesDesc:
			if out[i].Sales != out[j].Sales {
				return out[i].Sales > out[j].Sales
			}
		case byCountDesc:
			if out[i].Count != out[j].Count {
				return out[i].Count > out[j].Count
			}
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func top(ranks []Rank, n int) []Rank {
	if n > 0 && len(ranks) > n {
		return ranks[:n]
	}
	return ranks
}
