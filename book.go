package faktur

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Book is the sales-invoice book: it owns the customer and product
// registries and the invoice ledger, and writes them through a Store. All
// operations are synchronous and run to completion; the store is a
// single-writer resource by construction.
type Book struct {
	store     *Store
	customers []string
	products  []string
	invoices  []Invoice
}

// Open loads a book from the store. Missing or corrupt collections degrade
// to empty ones, and the invoice counter is reconciled before the book is
// handed out.
func Open(store *Store) (*Book, error) {
	b := &Book{store: store}
	store.Get(KeyCustomers, &b.customers)
	store.Get(KeyProducts, &b.products)
	store.Get(KeyInvoices, &b.invoices)
	if b.customers == nil {
		b.customers = []string{}
	}
	if b.products == nil {
		b.products = []string{}
	}
	if b.invoices == nil {
		b.invoices = []Invoice{}
	}
	if _, err := b.Reconcile(); err != nil {
		return nil, err
	}
	return b, nil
}

// save persists the three collections together and then reconciles the
// counter. Every mutation goes through here.
func (b *Book) save() error {
	err := b.store.PutAll(map[string]any{
		KeyCustomers: b.customers,
		KeyProducts:  b.products,
		KeyInvoices:  b.invoices,
	})
	if err != nil {
		return err
	}
	_, err = b.Reconcile()
	return err
}

// maxNo returns the highest invoice number in the book, 0 when empty.
func (b *Book) maxNo() int {
	m := 0
	for _, inv := range b.invoices {
		if inv.No > m {
			m = inv.No
		}
	}
	return m
}

// Reconcile repairs the stored invoice counter so that it is at least one
// greater than every invoice number in the book, persists it, and returns
// it. It is idempotent and runs at open time and after every invoice
// mutation.
func (b *Book) Reconcile() (int, error) {
	var stored int
	b.store.Get(KeyInvoiceCounter, &stored) // absent or corrupt reads as 0

	next := b.maxNo() + 1
	if stored > next {
		next = stored
	}
	if err := b.store.Put(KeyInvoiceCounter, next); err != nil {
		return 0, fmt.Errorf("could not persist invoice counter: %w", err)
	}
	return next, nil
}

// NextNumber consumes and returns the next invoice number, repairing the
// counter first if it is missing or implausible. The returned number is
// strictly greater than every number currently in the book, and a number is
// never handed out twice.
func (b *Book) NextNumber() (int, error) {
	var c int
	if !b.store.Get(KeyInvoiceCounter, &c) || c < 1 {
		var err error
		if c, err = b.Reconcile(); err != nil {
			return 0, err
		}
	}
	if err := b.store.Put(KeyInvoiceCounter, c+1); err != nil {
		return 0, fmt.Errorf("could not persist invoice counter: %w", err)
	}
	return c, nil
}

// CreateInvoice validates the input, assigns a fresh invoice number,
// computes the total, appends the invoice and persists the book. It returns
// the new invoice and its position.
func (b *Book) CreateInvoice(date Date, customer string, items []Item) (Invoice, int, error) {
	customer = strings.TrimSpace(customer)
	if err := validateInvoice(customer, items); err != nil {
		return Invoice{}, 0, err
	}
	no, err := b.NextNumber()
	if err != nil {
		return Invoice{}, 0, err
	}
	inv := Invoice{
		No:       no,
		Date:     date.String(),
		Customer: customer,
		Items:    slices.Clone(items),
		Total:    sumItems(items),
	}
	b.invoices = append(b.invoices, inv)
	if err := b.save(); err != nil {
		return Invoice{}, 0, err
	}
	return inv, len(b.invoices) - 1, nil
}

// UpdateInvoice replaces the invoice at pos with the validated input,
// preserving its number. A fresh number is assigned only if the existing
// record inexplicably lacks one.
func (b *Book) UpdateInvoice(pos int, date Date, customer string, items []Item) (Invoice, error) {
	if pos < 0 || pos >= len(b.invoices) {
		return Invoice{}, &NotFoundError{What: fmt.Sprintf("invoice at position %d", pos)}
	}
	customer = strings.TrimSpace(customer)
	if err := validateInvoice(customer, items); err != nil {
		return Invoice{}, err
	}
	no := b.invoices[pos].No
	if no < 1 {
		var err error
		if no, err = b.NextNumber(); err != nil {
			return Invoice{}, err
		}
	}
	inv := Invoice{
		No:       no,
		Date:     date.String(),
		Customer: customer,
		Items:    slices.Clone(items),
		Total:    sumItems(items),
	}
	b.invoices[pos] = inv
	if err := b.save(); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

// RemoveInvoice deletes the invoice at pos and persists the book. The
// counter is never adjusted downward: numbers are not reused.
func (b *Book) RemoveInvoice(pos int) error {
	if pos < 0 || pos >= len(b.invoices) {
		return &NotFoundError{What: fmt.Sprintf("invoice at position %d", pos)}
	}
	b.invoices = slices.Delete(b.invoices, pos, pos+1)
	return b.save()
}

// FindInvoice looks an invoice up by its number and returns it with its
// position. Filtered views lose positional stability, so the number is the
// logical key.
func (b *Book) FindInvoice(no int) (Invoice, int, error) {
	for i, inv := range b.invoices {
		if inv.No == no {
			return inv, i, nil
		}
	}
	return Invoice{}, 0, &NotFoundError{What: fmt.Sprintf("invoice %d", no)}
}

// AllInvoices returns the invoices in book order.
func (b *Book) AllInvoices() []Invoice {
	return slices.Clone(b.invoices)
}

// Invoices returns an iterator over the invoices in book order. With no
// filters every invoice is yielded; otherwise an invoice is yielded only if
// it matches all of them.
func (b *Book) Invoices(filters ...func(Invoice) bool) iter.Seq2[int, Invoice] {
	return func(yield func(int, Invoice) bool) {
	next:
		for i, inv := range b.invoices {
			for _, filter := range filters {
				if !filter(inv) {
					continue next
				}
			}
			if !yield(i, inv) {
				return
			}
		}
	}
}
