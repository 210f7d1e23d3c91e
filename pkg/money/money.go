// Package money provides display formatting for cent-denominated amounts.
// All monetary values in the storefront are carried as int64 cents; rendering
// to a currency string happens only at the presentation edge.
package money

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders an amount in cents as a dollar string, e.g. 12099 → "$120.99".
// Negative amounts keep the sign ahead of the currency symbol.
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, group(cents/100), cents%100)
}

// group inserts thousands separators into a non-negative integer.
func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// DiscountPercent returns the rounded percentage discount of price relative
// to the original price. Returns 0 when original is not strictly greater than
// price, so non-discounted products never show a badge.
func DiscountPercent(original, price int64) int {
	if original <= 0 || original <= price {
		return 0
	}
	return int(math.Round(float64(original-price) / float64(original) * 100))
}
