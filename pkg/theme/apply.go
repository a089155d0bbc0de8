package theme

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Accent returns the KPI accent color for a metric name.
// Recognized metrics: "sales", "orders", "avg-value".
// Unknown metrics fall back to the plain card border, mirroring an
// unmatched selector in a stylesheet.
func Accent(t Theme, metric string) string {
	switch strings.ToLower(metric) {
	case "sales":
		return t.KPISales
	case "orders":
		return t.KPIOrders
	case "avg-value", "avg_value", "avg":
		return t.KPIAvgValue
	default:
		return t.Border
	}
}

// BorderColor resolves the card border color for the given interaction
// state. Hover wins over focus, matching the cascade order of the
// hover rules.
func BorderColor(t Theme, focused, hovered bool) string {
	switch {
	case hovered:
		return t.BorderHover
	case focused:
		return t.BorderFocus
	default:
		return t.Border
	}
}

// StatusColor colors an order status string. Fulfilment-style statuses
// map to OK, in-flight ones to warn, terminal failures to error.
func StatusColor(t Theme, status string) string {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "deliver"), strings.Contains(s, "shipped"):
		return t.StatusOK
	case strings.Contains(s, "pending"), strings.Contains(s, "process"), strings.Contains(s, "unshipped"):
		return t.StatusWarn
	case strings.Contains(s, "cancel"), strings.Contains(s, "return"), strings.Contains(s, "refund"):
		return t.StatusError
	default:
		return t.StatusUnknown
	}
}

// Gradient interpolates between two hex colors in Luv space and returns
// steps evenly spaced colors, endpoints included. Used for the header
// banner's horizontal gradient. Invalid endpoints yield a flat ramp of
// the start color.
func Gradient(start, end string, steps int) []string {
	if steps <= 0 {
		return nil
	}
	out := make([]string, steps)

	c1, err1 := colorful.Hex(start)
	c2, err2 := colorful.Hex(end)
	if err1 != nil || err2 != nil {
		for i := range out {
			out[i] = start
		}
		return out
	}
	if steps == 1 {
		out[0] = c1.Hex()
		return out
	}

	for i := 0; i < steps; i++ {
		frac := float64(i) / float64(steps-1)
		out[i] = c1.BlendLuv(c2, frac).Clamped().Hex()
	}
	return out
}
