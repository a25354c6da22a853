package faktur

import (
	"path/filepath"
	"testing"
)

// testBook returns an empty book backed by a store in a temp dir.
func testBook(t *testing.T) *Book {
	t.Helper()
	b, err := Open(NewStore(filepath.Join(t.TempDir(), "book.json")))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return b
}

// item is a helper for tests to build an invoice line from consts.
func item(name string, weight, price float64) Item {
	return Item{Name: name, Weight: Q(weight), UnitPrice: A(price)}
}

// counter reads the persisted invoice counter straight from the store.
func counter(t *testing.T, b *Book) int {
	t.Helper()
	var c int
	b.store.Get(KeyInvoiceCounter, &c)
	return c
}

// invoicesEqual compares invoices value by value, using Amount and Quantity
// equality rather than their internal representation.
func invoicesEqual(a, b Invoice) bool {
	if a.No != b.No || a.Date != b.Date || a.Customer != b.Customer || len(a.Items) != len(b.Items) {
		return false
	}
	if !a.Total.Equal(b.Total) {
		return false
	}
	for i := range a.Items {
		x, y := a.Items[i], b.Items[i]
		if x.Name != y.Name || !x.Weight.Equal(y.Weight) || !x.UnitPrice.Equal(y.UnitPrice) {
			return false
		}
	}
	return true
}
