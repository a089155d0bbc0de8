package sales

import (
	"fmt"
	"strings"
)

// FormatAmount renders a rupee amount as "₹1,234,567.89".
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	out := "₹" + groupThousands(s[:dot]) + s[dot:]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatCount renders an order count as "1,234".
func FormatCount(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	out := groupThousands(fmt.Sprintf("%d", n))
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
