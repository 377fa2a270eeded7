package utils

import (
	"fmt"
	"strings"
)

// FormatPriceDH formats an amount in dirhams the French way.
// Example: 1250.5 -> "1 250,50 DH"
func FormatPriceDH(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	negative := strings.HasPrefix(formatted, "-")
	formatted = strings.TrimPrefix(formatted, "-")

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	// thousands separated by a space
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	result := strings.Join(groups, " ") + "," + decimalPart + " DH"
	if negative {
		result = "-" + result
	}
	return result
}
