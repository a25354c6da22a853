package faktur

import (
	"strings"

	"github.com/shopspring/decimal"
)

const persianZero = '۰' // ۰
const arabicZero = '٠'  // ٠

// FoldDigits maps Persian and Arabic-Indic digit glyphs to their ASCII
// equivalents, strips Arabic grouping separators and the Persian comma, and
// maps the Persian decimal mark to '.'. The result is trimmed. It is applied
// before any numeric or date parse, so literal input copied from localized
// documents round-trips correctly.
func FoldDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= persianZero && r <= persianZero+9:
			b.WriteRune('0' + r - persianZero)
		case r >= arabicZero && r <= arabicZero+9:
			b.WriteRune('0' + r - arabicZero)
		case r == '٬' || r == '،': // ٬ thousands separator, ، comma
			// skip
		case r == '٫': // ٫ decimal separator
			b.WriteRune('.')
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// parseDecimal parses a possibly localized numeric string.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(FoldDigits(s))
}

// ParseAmount parses a localized money value, e.g. "150000", "۲۰۰۰۰" or
// "12٬500٫5".
func ParseAmount(s string) (Amount, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Amount{}, invalidf("amount", "%q is not a number", s)
	}
	return Amount{value: d}, nil
}

// ParseQuantity parses a localized weight value.
func ParseQuantity(s string) (Quantity, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Quantity{}, invalidf("weight", "%q is not a number", s)
	}
	return Quantity{value: d}, nil
}
