// Package sales loads and aggregates the order-report data the
// dashboard presents: CSV ingestion with cleaning rules, multi-valued
// filters, KPI computation, and the per-chart aggregations.
package sales

import (
	"sort"
	"time"
)

// Order is one cleaned row of the sales report.
type Order struct {
	ID       string
	Date     time.Time
	Month    string // YYYY-MM, derived from Date
	Category string
	State    string
	City     string
	Status   string
	Amount   float64
}

// Dataset is the full cleaned order set plus the distinct filter options
// derived from it.
type Dataset struct {
	Orders []Order

	// Distinct values, sorted, for the three filter groups.
	Categories []string
	States     []string
	Statuses   []string
}

// buildOptions derives the sorted distinct filter options from Orders.
func (d *Dataset) buildOptions() {
	d.Categories = distinct(d.Orders, func(o Order) string { return o.Category })
	d.States = distinct(d.Orders, func(o Order) string { return o.State })
	d.Statuses = distinct(d.Orders, func(o Order) string { return o.Status })
}

// FindOrder looks up an order by exact ID in the full dataset. Returns
// the order and true if present.
func (d *Dataset) FindOrder(id string) (Order, bool) {
	for _, o := range d.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func distinct(orders []Order, key func(Order) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, o := range orders {
		k := key(o)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
