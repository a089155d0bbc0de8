// Package analyst answers free-text questions about the order set
// currently visible on the dashboard. It is a rule engine, not a model:
// a fixed set of patterns (entity lookups, order lookups, aggregate
// phrases) evaluated against the filtered view, with a help fallback
// for anything unrecognized.
package analyst

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/salespulse/salespulse/pkg/sales"
)

var (
	// "sales in Mumbai", "orders from Karnataka", "count for Kurta"
	reEntity = regexp.MustCompile(`(sales|orders|count)\s+(?:in|for|from)\s+([\w\s.-]+)`)
	// "details for order 405-0000001", "status of order 171-1"
	reOrder = regexp.MustCompile(`(details|info|status)\s+(?:for|of)\s+order\s+([\w\-/]+)`)
	// "count cancelled orders", "count pending status"
	reStatusCount = regexp.MustCompile(`count ([\w\s]+?)\s*(?:orders|status)`)
)

// Analyze evaluates a question against the visible view. The full
// dataset is consulted only to distinguish "order filtered out" from
// "order does not exist".
func Analyze(question string, view sales.View, full *sales.Dataset) string {
	if strings.TrimSpace(question) == "" {
		return "Please ask a question about the current data view."
	}

	scope := view.Scope()
	if view.Empty() {
		return fmt.Sprintf("No data found for the %s. Please broaden your filters.", scope)
	}

	msg := strings.ToLower(strings.TrimSpace(question))

	if m := reEntity.FindStringSubmatch(msg); m != nil {
		return entityAnswer(m[1], m[2], view, scope)
	}
	if m := reOrder.FindStringSubmatch(msg); m != nil {
		return orderAnswer(m[1], m[2], view, full, scope)
	}

	switch {
	case contains(msg, "total sales", "total revenue"):
		return fmt.Sprintf("Total sales for the %s: %s.", scope, sales.FormatAmount(view.TotalSales()))

	case contains(msg, "how many orders", "total orders", "order count"):
		return fmt.Sprintf("Orders in the %s: %s.", scope, sales.FormatCount(view.OrderCount()))

	case contains(msg, "average amount", "average sales"):
		return fmt.Sprintf("Average order amount for the %s: %s.", scope, sales.FormatAmount(view.AvgOrderValue()))

	case strings.Contains(msg, "top category"):
		return topAnswer("category", view.TopCategories(1), scope)

	case strings.Contains(msg, "top city"):
		return topAnswer("city", view.TopCities(1), scope)

	case strings.Contains(msg, "top state"):
		return topAnswer("state", view.TopStates(1), scope)

	case contains(msg, "status summary", "order status"):
		return statusSummary(view, scope)

	case strings.Contains(msg, "count") && contains(msg, "orders", "status"):
		if m := reStatusCount.FindStringSubmatch(msg); m != nil {
			q := strings.TrimSpace(m[1])
			n := view.CountStatusContaining(q)
			return fmt.Sprintf("Found %s orders with status containing %q in %s.", sales.FormatCount(n), q, scope)
		}

	case hasWord(msg, "hello") || hasWord(msg, "hi"):
		return fmt.Sprintf("Hello! I can analyze the %s. What would you like to know?", scope)

	case hasWord(msg, "bye") || hasWord(msg, "thanks"):
		return "Happy to help analyze!"
	}

	return fmt.Sprintf("I'm not sure how to interpret that for the %s. "+
		"Try asking about totals, averages, tops, counts, or specifics like "+
		"'sales in Mumbai' or 'details for order 123-456'.", scope)
}

// entityAnswer resolves "<metric> in <entity>" against cities, then
// states, then category substrings, in that order.
func entityAnswer(metric, rawEntity string, view sales.View, scope string) string {
	entity := strings.TrimSpace(rawEntity)
	place := sales.PlaceName(entity)

	byCity := func(o sales.Order) string { return o.City }
	byState := func(o sales.Order) string { return o.State }

	if view.HasValue(byCity, place) {
		amount, count := view.SalesIn(byCity, place)
		return fmt.Sprintf("%s for city %s in the %s: %s.",
			metricTitle(metric), place, scope, metricValue(metric, amount, count))
	}
	if view.HasValue(byState, place) {
		amount, count := view.SalesIn(byState, place)
		return fmt.Sprintf("%s for state %s in the %s: %s.",
			metricTitle(metric), place, scope, metricValue(metric, amount, count))
	}
	if names, amount, count := view.CategoriesMatching(entity); count > 0 {
		display := names[0]
		if len(names) > 1 {
			display = fmt.Sprintf("categories matching %q", entity)
		}
		return fmt.Sprintf("%s for %s in the %s: %s.",
			metricTitle(metric), display, scope, metricValue(metric, amount, count))
	}

	return fmt.Sprintf("Could not find %q as a city, state, or category in the %s.", entity, scope)
}

// orderAnswer resolves "details/info/status for order <id>".
func orderAnswer(action, id string, view sales.View, full *sales.Dataset, scope string) string {
	o, ok := view.FindOrder(id)
	if !ok {
		if full != nil {
			if _, exists := full.FindOrder(id); exists {
				return fmt.Sprintf("Order %s exists but is not in the %s. Try removing filters.", id, scope)
			}
		}
		return fmt.Sprintf("Order ID %s not found in the dataset.", id)
	}

	if action == "status" {
		return fmt.Sprintf("Status for order %s in %s: %s.", id, scope, o.Status)
	}

	lines := []string{
		fmt.Sprintf("Details for Order ID %s (found in %s):", id, scope),
		"- Date: " + o.Date.Format("2006-01-02"),
		"- Status: " + o.Status,
		"- Amount: " + sales.FormatAmount(o.Amount),
		"- Category: " + o.Category,
		"- Ship to City: " + o.City,
		"- Ship to State: " + o.State,
	}
	return strings.Join(lines, "\n")
}

func topAnswer(kind string, tops []sales.Rank, scope string) string {
	if len(tops) == 0 {
		return fmt.Sprintf("Cannot determine top %s for %s.", kind, scope)
	}
	return fmt.Sprintf("Top %s (by sales) in %s: %s (%s).",
		kind, scope, tops[0].Name, sales.FormatAmount(tops[0].Sales))
}

func statusSummary(view sales.View, scope string) string {
	counts := view.StatusCounts()
	if len(counts) == 0 {
		return fmt.Sprintf("No status info for %s.", scope)
	}
	lines := []string{fmt.Sprintf("Status summary for %s:", scope)}
	for _, r := range counts {
		lines = append(lines, fmt.Sprintf("- %s: %s orders", r.Name, sales.FormatCount(r.Count)))
	}
	return strings.Join(lines, "\n")
}

func metricTitle(metric string) string {
	if metric == "" {
		return metric
	}
	return strings.ToUpper(metric[:1]) + metric[1:]
}

func metricValue(metric string, amount float64, count int) string {
	if metric == "sales" {
		return sales.FormatAmount(amount)
	}
	return sales.FormatCount(count)
}

func contains(msg string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func hasWord(msg, word string) bool {
	for _, f := range strings.FieldsFunc(msg, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
	}) {
		if f == word {
			return true
		}
	}
	return false
}
