package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hqassab/faktur"
	"github.com/hqassab/faktur/renderer"
)

type reportCmd struct {
	year     string
	month    string
	day      string
	customer string
	product  string
	plain    bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "list invoices, optionally filtered" }
func (*reportCmd) Usage() string {
	return `fk report [-year <y>] [-month <m>] [-day <d>] [-customer <name>] [-product <name>]

  Lists invoices in book order. Each flag narrows the report; with no flag
  at all the whole book is listed, including invoices whose stored date no
  longer parses. As soon as any filter is supplied, invoices with an
  unparseable date are left out.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "year", "", "Filter by year")
	f.StringVar(&c.month, "month", "", "Filter by month")
	f.StringVar(&c.day, "day", "", "Filter by day of month")
	f.StringVar(&c.customer, "customer", "", "Filter by exact customer name")
	f.StringVar(&c.product, "product", "", "Keep invoices with at least one item of this product")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	criteria := faktur.Criteria{
		Year:     c.year,
		Month:    c.month,
		Day:      c.day,
		Customer: c.customer,
		Product:  c.product,
	}
	invoices := faktur.Filter(book.AllInvoices(), criteria)
	display(renderer.Report(invoices), c.plain)
	return subcommands.ExitSuccess
}
