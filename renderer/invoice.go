// Package renderer renders invoices and reports as markdown documents for
// terminal display or printing. It is a pure consumer of the faktur core.
package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hqassab/faktur"
	md "github.com/nao1215/markdown"
)

// Invoice renders one sales invoice as a markdown document: header fields,
// the item table with per-line totals, and the grand total.
func Invoice(inv faktur.Invoice) string {
	var buf strings.Builder
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Invoice")
	doc.PlainTextf("Number: %s", strconv.Itoa(inv.No))
	doc.PlainTextf("Date: %s", inv.Date)
	doc.PlainTextf("Customer: %s", inv.Customer)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Product", "Weight", "Unit Price", "Total"},
	}
	for i, it := range inv.Items {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			it.Name,
			it.Weight.String(),
			faktur.Grouped(it.UnitPrice),
			faktur.Grouped(it.Total()),
		})
	}
	table.Rows = append(table.Rows, []string{
		"", "", "", md.Bold("Grand Total"), md.Bold(faktur.Grouped(inv.Total)),
	})
	doc.Table(table)

	return doc.String()
}

// InvoiceText renders the plain-text copyable form of an invoice:
// tab-separated lines suitable for pasting into a message.
func InvoiceText(inv faktur.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sales Invoice\nNumber:\t%d\nDate:\t%s\nCustomer:\t%s\n", inv.No, inv.Date, inv.Customer)
	b.WriteString("#\tProduct\tWeight\tUnit Price\tTotal\n")
	for i, it := range inv.Items {
		fmt.Fprintf(&b, "%d\t%s\t%s\t%s\t%s\n",
			i+1, it.Name, it.Weight, faktur.Grouped(it.UnitPrice), faktur.Grouped(it.Total()))
	}
	fmt.Fprintf(&b, "Grand Total:\t%s\n", faktur.Grouped(inv.Total))
	return b.String()
}
