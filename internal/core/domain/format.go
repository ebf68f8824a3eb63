package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders amount with the currency symbol, thousands separators
// and exactly two decimals, e.g. "€1,234.50".
func FormatAmount(amount decimal.Decimal, code CurrencyCode) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + code.Symbol() + b.String() + "." + frac
}
