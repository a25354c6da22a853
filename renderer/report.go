package renderer

import (
	"strconv"
	"strings"

	"github.com/hqassab/faktur"
	md "github.com/nao1215/markdown"
)

// Report renders a list of invoices as a markdown summary table, one row
// per invoice, in the order given.
func Report(invoices []faktur.Invoice) string {
	var buf strings.Builder
	doc := md.NewMarkdown(&buf)

	doc.H1("Invoices")
	if len(invoices) == 0 {
		doc.PlainText("No invoices.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"No", "Date", "Customer", "Items", "Total"},
	}
	var grand faktur.Amount
	for _, inv := range invoices {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(inv.No),
			inv.Date,
			inv.Customer,
			strconv.Itoa(len(inv.Items)),
			faktur.Grouped(inv.Total),
		})
		grand = grand.Add(inv.Total)
	}
	table.Rows = append(table.Rows, []string{
		"", "", "", md.Bold("Total"), md.Bold(faktur.Grouped(grand)),
	})
	doc.Table(table)

	return doc.String()
}
