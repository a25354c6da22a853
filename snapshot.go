package faktur

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Snapshot is the portable backup form of the book: the three canonical
// collections, no extra metadata.
type Snapshot struct {
	Customers []string  `json:"customers"`
	Products  []string  `json:"products"`
	Invoices  []Invoice `json:"invoices"`
}

// Export returns a snapshot of the book's current collections.
func (b *Book) Export() Snapshot {
	return Snapshot{
		Customers: b.Customers().All(),
		Products:  b.Products().All(),
		Invoices:  b.AllInvoices(),
	}
}

// WriteSnapshot writes the book as an indented JSON snapshot.
func (b *Book) WriteSnapshot(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b.Export()); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return nil
}

// Field aliases accepted on import, in resolution order: the first alias
// present in the input object wins.
var (
	dateAliases     = []string{"date", "invoiceDate"}
	customerAliases = []string{"customer", "client"}
	noAliases       = []string{"no", "number", "invoiceNo"}
	nameAliases     = []string{"name", "product"}
	priceAliases    = []string{"unitPrice", "price"}
)

// Import replaces the whole book with the snapshot read from r.
//
// The input may be the canonical snapshot object or a bare array of
// invoices; the bare form keeps the currently stored customers and
// products. Invoice objects are normalized field by field (aliases,
// localized digits, numeric text), and an invoice survives only if its date
// normalizes, its customer is non-empty and at least one item keeps a
// non-empty name. Zero or negative weights and prices are tolerated here,
// unlike the interactive path. Customers and products are accepted as
// given, without the registries' uniqueness checks.
//
// If the top level does not resolve to the three collections, or no invoice
// survives, the import is rejected with a MalformedSnapshotError and the
// stored book is untouched. On success the collections are replaced in
// full, persisted as one logical unit, and the counter is reconciled; the
// number of imported invoices is returned.
func (b *Book) Import(r io.Reader) (int, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return 0, &MalformedSnapshotError{Reason: fmt.Sprintf("not valid JSON: %v", err)}
	}

	// A bare array is an invoices-only snapshot.
	if seq, ok := doc.([]any); ok {
		doc = map[string]any{
			"customers": anySlice(b.customers),
			"products":  anySlice(b.products),
			"invoices":  seq,
		}
	}

	rawCustomers, ok := collection(doc, "customers")
	if !ok {
		return 0, &MalformedSnapshotError{Reason: "customers is not a sequence"}
	}
	rawProducts, ok := collection(doc, "products")
	if !ok {
		return 0, &MalformedSnapshotError{Reason: "products is not a sequence"}
	}
	rawInvoices, ok := collection(doc, "invoices")
	if !ok {
		return 0, &MalformedSnapshotError{Reason: "invoices is not a sequence"}
	}

	invoices := make([]Invoice, 0, len(rawInvoices))
	for _, raw := range rawInvoices {
		if inv, ok := normalizeInvoice(raw); ok {
			invoices = append(invoices, inv)
		}
	}
	if len(invoices) == 0 {
		return 0, &MalformedSnapshotError{Reason: "no invoice survived normalization"}
	}

	b.customers = stringSlice(rawCustomers)
	b.products = stringSlice(rawProducts)
	b.invoices = invoices
	if err := b.save(); err != nil {
		return 0, err
	}
	return len(invoices), nil
}

// collection resolves a top-level key of the decoded snapshot to a
// sequence.
func collection(doc any, key string) ([]any, bool) {
	v, err := jsonpath.Get("$."+key, doc)
	if err != nil {
		return nil, false
	}
	seq, ok := v.([]any)
	return seq, ok
}

// normalizeInvoice coerces one candidate invoice object into the canonical
// shape, reporting whether it survives.
func normalizeInvoice(raw any) (Invoice, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Invoice{}, false
	}

	date, err := ParseDate(asString(firstAlias(m, dateAliases)))
	if err != nil {
		return Invoice{}, false
	}
	customer := strings.TrimSpace(asString(firstAlias(m, customerAliases)))
	if customer == "" {
		return Invoice{}, false
	}

	var items []Item
	if rawItems, ok := m["items"].([]any); ok {
		for _, rawItem := range rawItems {
			im, ok := rawItem.(map[string]any)
			if !ok {
				continue
			}
			name := strings.TrimSpace(asString(firstAlias(im, nameAliases)))
			if name == "" {
				continue
			}
			items = append(items, Item{
				Name:      name,
				Weight:    Quantity{value: asDecimal(im["weight"])},
				UnitPrice: Amount{value: asDecimal(firstAlias(im, priceAliases))},
			})
		}
	}
	if len(items) == 0 {
		return Invoice{}, false
	}

	total := Amount{value: asDecimal(m["total"])}
	if !total.IsPositive() {
		total = sumItems(items)
	}

	inv := Invoice{
		Date:     date.String(),
		Customer: customer,
		Items:    items,
		Total:    total,
	}
	if v := firstAlias(m, noAliases); v != nil && strings.TrimSpace(asString(v)) != "" {
		inv.No = int(asDecimal(v).IntPart())
	}
	return inv, true
}

// firstAlias returns the value of the first alias present in m, or nil.
func firstAlias(m map[string]any, aliases []string) any {
	for _, alias := range aliases {
		if v, ok := m[alias]; ok {
			return v
		}
	}
	return nil
}

// asString renders a decoded JSON scalar as text.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// asDecimal coerces a decoded JSON value to a decimal, accepting
// numeric-looking text with localized digit glyphs. Unparsable values
// default to zero.
func asDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return d
		}
	case string:
		if d, err := parseDecimal(n); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func stringSlice(seq []any) []string {
	out := make([]string, 0, len(seq))
	for _, v := range seq {
		out = append(out, asString(v))
	}
	return out
}

func anySlice(names []string) []any {
	out := make([]any, 0, len(names))
	for _, name := range names {
		out = append(out, name)
	}
	return out
}
