package components

import "fmt"

// FormatCents renders an amount of cents as dollars, e.g. 2500 -> "$25.00"
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// FormatPrice renders the price line for an event summary
func FormatPrice(fromCents int64, free bool) string {
	if free {
		return "Free"
	}
	return "From " + FormatCents(fromCents)
}
