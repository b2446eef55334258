package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with two decimal places, rounding
// only at this formatting boundary. The engine's outputs stay full-precision
// decimals; display rounding never feeds back into any computation.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatBRL renders an amount the way the dashboard shows it: Brazilian Real
// with a dot as thousands separator and a comma before the cents, e.g.
// 1234567.8 -> "R$ 1.234.567,80".
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	centsPart := fixed[len(fixed)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + centsPart
	if negative {
		out = "-" + out
	}
	return out
}
