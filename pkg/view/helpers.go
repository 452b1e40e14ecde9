package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Naira formats an amount the way the shop displays prices. The amount is
// rounded to whole kobo first, so carries land in the naira part.
// E.g., 12500 -> "₦12,500", 1999.5 -> "₦1,999.50", 1999.999 -> "₦2,000"
func Naira(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	s := groupThousands(strconv.FormatInt(whole, 10))
	if frac > 0 {
		s += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		return "-₦" + s
	}
	return "₦" + s
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
