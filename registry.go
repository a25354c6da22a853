package faktur

import (
	"fmt"
	"slices"
	"strings"
)

// Registry is a uniqueness-enforced view over one of the book's name lists.
// Customers and products have the exact same shape and rules, so both are
// served by the same type. Entries are plain text: invoices referencing a
// removed or renamed entry keep the old name (see Invoice).
type Registry struct {
	kind string // "customer" or "product", for error messages
	book *Book
	list *[]string
}

// Customers returns the customer registry of the book.
func (b *Book) Customers() Registry {
	return Registry{kind: "customer", book: b, list: &b.customers}
}

// Products returns the product registry of the book.
func (b *Book) Products() Registry {
	return Registry{kind: "product", book: b, list: &b.products}
}

// All returns the entries in insertion order.
func (r Registry) All() []string { return slices.Clone(*r.list) }

// Len returns the number of entries.
func (r Registry) Len() int { return len(*r.list) }

// At returns the entry at index i.
func (r Registry) At(i int) (string, error) {
	if i < 0 || i >= len(*r.list) {
		return "", &NotFoundError{What: fmt.Sprintf("%s at position %d", r.kind, i)}
	}
	return (*r.list)[i], nil
}

// taken reports whether name collides with an entry other than the one at
// index skip. Entries are compared trimmed, case-sensitively.
func (r Registry) taken(name string, skip int) bool {
	for i, entry := range *r.list {
		if i != skip && strings.TrimSpace(entry) == name {
			return true
		}
	}
	return false
}

// Add appends a new entry and persists the book. The name is trimmed and
// must be non-empty and unique.
func (r Registry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidf(r.kind, "a name is required")
	}
	if r.taken(name, -1) {
		return invalidf(r.kind, "%q already exists", name)
	}
	*r.list = append(*r.list, name)
	return r.book.save()
}

// Rename replaces the entry at index i and persists the book. The new name
// must be non-empty and must not collide with any other entry. Invoices
// referencing the old name are not touched.
func (r Registry) Rename(i int, name string) error {
	if i < 0 || i >= len(*r.list) {
		return &NotFoundError{What: fmt.Sprintf("%s at position %d", r.kind, i)}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidf(r.kind, "a name is required")
	}
	if r.taken(name, i) {
		return invalidf(r.kind, "%q already exists", name)
	}
	(*r.list)[i] = name
	return r.book.save()
}

// Remove deletes the entry at index i and persists the book. There is no
// cascade: historical invoices keep the removed name as text.
func (r Registry) Remove(i int) error {
	if i < 0 || i >= len(*r.list) {
		return &NotFoundError{What: fmt.Sprintf("%s at position %d", r.kind, i)}
	}
	*r.list = slices.Delete(*r.list, i, i+1)
	return r.book.save()
}
