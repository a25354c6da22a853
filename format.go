package faktur

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Grouped formats an amount with locale-aware thousands grouping, e.g.
// "300,000". This is the only currency formatting the book does.
func Grouped(a Amount) string {
	f, exact := a.Float64()
	if !exact && a.value.IsInteger() {
		// large integer totals; fall back to the plain digits
		return a.String()
	}
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(6)))
}

// PersianDigits maps the ASCII digits of s to Persian glyphs, for rendering
// documents the way the business prints them.
func PersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianZero + r - '0'
		}
		return r
	}, s)
}
