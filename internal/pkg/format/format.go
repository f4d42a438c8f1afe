// internal/pkg/format/format.go
package format

import (
	"strconv"
)

// Price renders a dollar amount with two decimals, e.g. 24.99 -> "24.99".
// Rounding happens here and only here; stored amounts stay unrounded.
func Price(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
