package faktur

import (
	"slices"
	"strconv"
)

// Criteria selects invoices for a report. Every field is optional; the
// empty string is a wildcard. An invoice matches only if every supplied
// criterion matches.
type Criteria struct {
	Year     string
	Month    string
	Day      string
	Customer string
	Product  string
}

// IsZero reports whether no criterion is supplied at all. A zero Criteria
// means "no filter", which is distinct from a filter that matches nothing.
func (c Criteria) IsZero() bool { return c == Criteria{} }

// component normalizes one date criterion to its canonical numeric string,
// so that "05" or a localized "۵" matches a stored day 5.
func component(s string) string {
	s = FoldDigits(s)
	if n, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(n)
	}
	return s
}

// Match reports whether the invoice satisfies every supplied criterion.
// The invoice date is normalized first; an invoice whose date does not
// parse never matches any criteria.
func (c Criteria) Match(inv Invoice) bool {
	d, err := ParseDate(inv.Date)
	if err != nil {
		return false
	}
	if c.Year != "" && strconv.Itoa(d.Y) != component(c.Year) {
		return false
	}
	if c.Month != "" && strconv.Itoa(d.M) != component(c.Month) {
		return false
	}
	if c.Day != "" && strconv.Itoa(d.D) != component(c.Day) {
		return false
	}
	if c.Customer != "" && inv.Customer != c.Customer {
		return false
	}
	if c.Product != "" && !slices.ContainsFunc(inv.Items, func(it Item) bool {
		return it.Name == c.Product
	}) {
		return false
	}
	return true
}

// Filter returns the invoices matching the criteria, preserving book order.
// With a zero Criteria the full slice is returned unfiltered, malformed
// dates included.
func Filter(invoices []Invoice, c Criteria) []Invoice {
	if c.IsZero() {
		return slices.Clone(invoices)
	}
	filtered := []Invoice{}
	for _, inv := range invoices {
		if c.Match(inv) {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}

// ByCustomer returns a predicate that filters invoices by exact customer
// name, for use with Book.Invoices.
func ByCustomer(name string) func(Invoice) bool {
	return func(inv Invoice) bool { return inv.Customer == name }
}

// ByProduct returns a predicate that keeps invoices with at least one item
// whose name equals the given product.
func ByProduct(name string) func(Invoice) bool {
	return func(inv Invoice) bool {
		return slices.ContainsFunc(inv.Items, func(it Item) bool {
			return it.Name == name
		})
	}
}
