// Package format provides display formatting for currency and ratio values.
package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

// Ratio returns a ROAS multiple string (e.g., "10.00x").
func Ratio(value float64) string {
	return fmt.Sprintf("%.2fx", value)
}

// Percent returns a percentage string with one decimal place (e.g., "3.0%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// Count returns a whole-number string with thousands separators (e.g., "1,050").
func Count(value float64) string {
	formatted := NumericCurrency(math.Round(value))
	return strings.TrimSuffix(formatted, ".00")
}

// formatPositiveCurrency renders a non-negative value with two decimals and
// the locale's digit grouping.
func formatPositiveCurrency(value float64) string {
	return printer.Sprintf("%.2f", value)
}
