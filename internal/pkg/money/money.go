// Package money formats amounts for display, e.g. $6,000.00.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

func FormatUSD(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
