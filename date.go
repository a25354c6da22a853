package faktur

import (
	"fmt"
	"strconv"
	"strings"
)

// Date represents an invoice date with day-level granularity.
//
// Invoice dates are opaque "Y/M/D" calendar labels (Solar Hijri in practice,
// e.g. "1404/1/5"); the book never does calendar arithmetic on them, so a
// Date is just its three numeric components. Invoices persist the date as
// text and parse it lazily: a malformed stored date survives loading and is
// merely excluded from date-filtered reports.
type Date struct {
	Y, M, D int
}

// NewDate returns the Date for the given year, month and day components.
func NewDate(year, month, day int) Date { return Date{Y: year, M: month, D: day} }

// ParseDate parses a "Y/M/D" date. The separator may be '/', '-' or '.',
// the components may use localized digit glyphs, and leading zeros are
// accepted on read but never written back (see String).
func ParseDate(s string) (Date, error) {
	parts := strings.FieldsFunc(FoldDigits(s), func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date %q is not in Y/M/D form", s)
	}
	var c [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return Date{}, fmt.Errorf("date %q has a non-numeric component %q", s, p)
		}
		c[i] = n
	}
	return Date{Y: c[0], M: c[1], D: c[2]}, nil
}

// String formats the date in the canonical "Y/M/D" form, numeric components
// without leading zeros.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Y, d.M, d.D)
}

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// MarshalJSON implements the json.Marshaler interface for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
