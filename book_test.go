package faktur

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestCreateInvoice(t *testing.T) {
	b := testBook(t)

	inv, pos, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)})
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}
	if inv.No != 1 {
		t.Errorf("No = %d, want 1 on an empty book", inv.No)
	}
	if pos != 0 {
		t.Errorf("position = %d, want 0", pos)
	}
	if !inv.Total.Equal(A(300000)) {
		t.Errorf("Total = %v, want 300000", inv.Total)
	}
	if inv.Date != "1404/1/5" {
		t.Errorf("Date = %q, want 1404/1/5", inv.Date)
	}
	if got := counter(t, b); got != 2 {
		t.Errorf("counter = %d, want 2 after the first invoice", got)
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	b := testBook(t)
	testCases := []struct {
		name     string
		customer string
		items    []Item
	}{
		{name: "missing customer", customer: "", items: []Item{item("Trout", 2, 150000)}},
		{name: "blank customer", customer: "   ", items: []Item{item("Trout", 2, 150000)}},
		{name: "no items", customer: "Ali", items: nil},
		{name: "item without name", customer: "Ali", items: []Item{item("  ", 2, 150000)}},
		{name: "zero weight", customer: "Ali", items: []Item{item("Trout", 0, 150000)}},
		{name: "negative price", customer: "Ali", items: []Item{item("Trout", 2, -1)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := b.CreateInvoice(NewDate(1404, 1, 5), tc.customer, tc.items)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("CreateInvoice() error = %v, want a ValidationError", err)
			}
			if len(b.AllInvoices()) != 0 {
				t.Error("a rejected create must not mutate the book")
			}
		})
	}
	// None of the rejected attempts may have consumed a number.
	inv, _, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)})
	if err != nil {
		t.Fatal(err)
	}
	if inv.No != 1 {
		t.Errorf("No = %d, want 1: rejected creates must not consume numbers", inv.No)
	}
}

func TestUpdateInvoicePreservesNumber(t *testing.T) {
	b := testBook(t)
	inv, pos, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := b.UpdateInvoice(pos, NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 3, 150000)})
	if err != nil {
		t.Fatalf("UpdateInvoice() error = %v", err)
	}
	if updated.No != inv.No {
		t.Errorf("No = %d, want %d preserved across the edit", updated.No, inv.No)
	}
	if !updated.Total.Equal(A(450000)) {
		t.Errorf("Total = %v, want 450000", updated.Total)
	}
}

func TestDeletedNumbersAreNeverReused(t *testing.T) {
	b := testBook(t)
	if _, _, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)}); err != nil {
		t.Fatal(err)
	}
	if err := b.RemoveInvoice(0); err != nil {
		t.Fatalf("RemoveInvoice() error = %v", err)
	}
	inv, _, err := b.CreateInvoice(NewDate(1404, 1, 6), "Sara", []Item{item("Shrimp", 1, 200000)})
	if err != nil {
		t.Fatal(err)
	}
	if inv.No != 2 {
		t.Errorf("No = %d, want 2: numbers are never reused", inv.No)
	}
}

func TestNumbersAreUnique(t *testing.T) {
	b := testBook(t)
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		inv, _, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)})
		if err != nil {
			t.Fatal(err)
		}
		if seen[inv.No] {
			t.Fatalf("number %d handed out twice", inv.No)
		}
		seen[inv.No] = true
		// delete every other invoice to churn positions
		if i%2 == 0 {
			if err := b.RemoveInvoice(len(b.AllInvoices()) - 1); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	b := testBook(t)
	if _, _, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)}); err != nil {
		t.Fatal(err)
	}
	first, err := b.Reconcile()
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Reconcile()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Reconcile() twice = %d then %d, want identical", first, second)
	}
}

func TestNextNumberRepairsCorruptCounter(t *testing.T) {
	b := testBook(t)
	if _, _, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)}); err != nil {
		t.Fatal(err)
	}
	// Sabotage the stored counter below the highest number.
	if err := b.store.Put(KeyInvoiceCounter, 0); err != nil {
		t.Fatal(err)
	}
	no, err := b.NextNumber()
	if err != nil {
		t.Fatalf("NextNumber() error = %v", err)
	}
	if no != 2 {
		t.Errorf("NextNumber() = %d, want 2 after repair", no)
	}
}

func TestNextNumberExceedsEveryInvoice(t *testing.T) {
	b := testBook(t)
	for i := 0; i < 3; i++ {
		if _, _, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)}); err != nil {
			t.Fatal(err)
		}
	}
	no, err := b.NextNumber()
	if err != nil {
		t.Fatal(err)
	}
	for _, inv := range b.AllInvoices() {
		if no <= inv.No {
			t.Errorf("NextNumber() = %d, not greater than existing invoice %d", no, inv.No)
		}
	}
}

func TestFindInvoice(t *testing.T) {
	b := testBook(t)
	created, _, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)})
	if err != nil {
		t.Fatal(err)
	}
	inv, pos, err := b.FindInvoice(created.No)
	if err != nil {
		t.Fatalf("FindInvoice() error = %v", err)
	}
	if pos != 0 || inv.No != created.No {
		t.Errorf("FindInvoice() = %v at %d, want %v at 0", inv, pos, created)
	}

	_, _, err = b.FindInvoice(999)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("FindInvoice(999) error = %v, want a NotFoundError", err)
	}
}

func TestBookPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	b, err := Open(NewStore(path))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Customers().Add("Ali"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := b.CreateInvoice(NewDate(1404, 1, 5), "Ali", []Item{item("Trout", 2, 150000)}); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(NewStore(path))
	if err != nil {
		t.Fatal(err)
	}
	if got := reopened.Customers().All(); len(got) != 1 || got[0] != "Ali" {
		t.Errorf("customers after reopen = %v, want [Ali]", got)
	}
	invoices := reopened.AllInvoices()
	if len(invoices) != 1 || invoices[0].No != 1 {
		t.Fatalf("invoices after reopen = %v, want the one created", invoices)
	}
	// The reopened book continues the numbering, not restarts it.
	inv, _, err := reopened.CreateInvoice(NewDate(1404, 1, 6), "Ali", []Item{item("Trout", 1, 150000)})
	if err != nil {
		t.Fatal(err)
	}
	if inv.No != 2 {
		t.Errorf("No = %d, want 2 after reopen", inv.No)
	}
}

func TestInvoicesIterator(t *testing.T) {
	b := testBook(t)
	for _, c := range []string{"Ali", "Sara", "Ali"} {
		if _, _, err := b.CreateInvoice(NewDate(1404, 1, 5), c, []Item{item("Trout", 2, 150000)}); err != nil {
			t.Fatal(err)
		}
	}
	var nos []int
	for _, inv := range b.Invoices(ByCustomer("Ali")) {
		nos = append(nos, inv.No)
	}
	if len(nos) != 2 || nos[0] != 1 || nos[1] != 3 {
		t.Errorf("Invoices(ByCustomer) yielded %v, want [1 3]", nos)
	}
	// No filter yields everything.
	count := 0
	for range b.Invoices() {
		count++
	}
	if count != 3 {
		t.Errorf("Invoices() yielded %d invoices, want 3", count)
	}
}
