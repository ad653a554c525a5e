// Package money formats prices for display.
package money

import "fmt"

// currencyPrefix is the fixed display currency of the storefront.
const currencyPrefix = "PKR"

// Format renders an amount as the storefront displays it: a fixed currency
// prefix and two-decimal fixed point, e.g. "PKR 820.00".
func Format(amount float64) string {
	return fmt.Sprintf("%s %.2f", currencyPrefix, amount)
}
