// Package format renders prices the way the storefront displays them.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupee = "₹"

var indianEnglish = language.MustParse("en-IN")

// INR formats amount with Indian digit grouping and a rupee sign, e.g. 12500 -> "₹12,500".
// Fractions are kept to at most two digits and trailing zeros are dropped.
func INR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	p := message.NewPrinter(indianEnglish)
	return sign + rupee + p.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}
