package utils

import "strings"

// FormatPrice formats a raw price cell for display: trims whitespace and
// prefixes "$" when the cell holds a bare number. Cells that already carry
// a currency symbol or are empty pass through unchanged.
func FormatPrice(raw string) string {
	price := strings.TrimSpace(raw)
	if price == "" {
		return price
	}
	if strings.HasPrefix(price, "$") || strings.HasPrefix(price, "-$") {
		return price
	}
	if !startsWithDigit(price) {
		return price
	}
	return "$" + price
}

func startsWithDigit(s string) bool {
	return s[0] >= '0' && s[0] <= '9'
}
