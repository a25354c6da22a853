package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hqassab/faktur"
	"github.com/hqassab/faktur/renderer"
)

// itemsFlag collects repeated -item flags of the form "name:weight:price".
// Weight and price accept localized digit glyphs, so a value copied from a
// Persian document parses as typed.
type itemsFlag []faktur.Item

func (fl *itemsFlag) String() string {
	var parts []string
	for _, it := range *fl {
		parts = append(parts, fmt.Sprintf("%s:%s:%s", it.Name, it.Weight, it.UnitPrice))
	}
	return strings.Join(parts, ", ")
}

func (fl *itemsFlag) Set(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return fmt.Errorf("item %q is not in name:weight:price form", s)
	}
	weight, err := faktur.ParseQuantity(parts[1])
	if err != nil {
		return err
	}
	price, err := faktur.ParseAmount(parts[2])
	if err != nil {
		return err
	}
	*fl = append(*fl, faktur.Item{
		Name:      strings.TrimSpace(parts[0]),
		Weight:    weight,
		UnitPrice: price,
	})
	return nil
}

type newInvoiceCmd struct {
	date     string
	customer string
	items    itemsFlag
	plain    bool
}

func (*newInvoiceCmd) Name() string     { return "invoice" }
func (*newInvoiceCmd) Synopsis() string { return "create a new invoice with a fresh number" }
func (*newInvoiceCmd) Usage() string {
	return `fk invoice -date <Y/M/D> -customer <name> -item <name:weight:price> [-item ...]

  Creates a new invoice. Every item needs a product name and strictly
  positive weight and unit price; the total is computed as the sum of
  weight times unit price. The invoice number is assigned from the book's
  counter and is never reused, even after deletion.
`
}

func (c *newInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Invoice date in Y/M/D form (required)")
	f.StringVar(&c.customer, "customer", "", "Customer name (required)")
	f.Var(&c.items, "item", "Invoice line as name:weight:price (repeatable)")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *newInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := faktur.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	inv, _, err := book.CreateInvoice(date, c.customer, c.items)
	if err != nil {
		return fail(err)
	}
	display(renderer.Invoice(inv), c.plain)
	return subcommands.ExitSuccess
}

type editInvoiceCmd struct {
	no       int
	date     string
	customer string
	items    itemsFlag
	plain    bool
}

func (*editInvoiceCmd) Name() string     { return "edit-invoice" }
func (*editInvoiceCmd) Synopsis() string { return "replace an invoice, preserving its number" }
func (*editInvoiceCmd) Usage() string {
	return `fk edit-invoice -n <no> -date <Y/M/D> -customer <name> -item <name:weight:price> [-item ...]

  Replaces the invoice with the given number. The same validation as
  invoice creation applies, but the invoice keeps its number.
`
}

func (c *editInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.no, "n", 0, "Number of the invoice to edit (required)")
	f.StringVar(&c.date, "date", "", "Invoice date in Y/M/D form (required)")
	f.StringVar(&c.customer, "customer", "", "Customer name (required)")
	f.Var(&c.items, "item", "Invoice line as name:weight:price (repeatable)")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *editInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.no < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n <no> is required.")
		return subcommands.ExitUsageError
	}
	date, err := faktur.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	_, pos, err := book.FindInvoice(c.no)
	if err != nil {
		return fail(err)
	}
	inv, err := book.UpdateInvoice(pos, date, c.customer, c.items)
	if err != nil {
		return fail(err)
	}
	display(renderer.Invoice(inv), c.plain)
	return subcommands.ExitSuccess
}

type rmInvoiceCmd struct {
	no int
}

func (*rmInvoiceCmd) Name() string     { return "rm-invoice" }
func (*rmInvoiceCmd) Synopsis() string { return "delete an invoice" }
func (*rmInvoiceCmd) Usage() string {
	return `fk rm-invoice -n <no>

  Deletes the invoice with the given number. The number is not reused: the
  next created invoice still gets a fresh one.
`
}

func (c *rmInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.no, "n", 0, "Number of the invoice to delete (required)")
}

func (c *rmInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.no < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n <no> is required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	_, pos, err := book.FindInvoice(c.no)
	if err != nil {
		return fail(err)
	}
	if err := book.RemoveInvoice(pos); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted invoice %d\n", c.no)
	return subcommands.ExitSuccess
}

type showInvoiceCmd struct {
	no      int
	text    bool
	plain   bool
	persian bool
}

func (*showInvoiceCmd) Name() string     { return "show-invoice" }
func (*showInvoiceCmd) Synopsis() string { return "display an invoice" }
func (*showInvoiceCmd) Usage() string {
	return `fk show-invoice -n <no> [-text] [-plain] [-fa]

  Displays the invoice with the given number. With -text the plain
  tab-separated form is printed, ready to paste into a message. With -fa
  digits are printed with Persian glyphs.
`
}

func (c *showInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.no, "n", 0, "Number of the invoice to show (required)")
	f.BoolVar(&c.text, "text", false, "Print the plain tab-separated form")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering for the terminal")
	f.BoolVar(&c.persian, "fa", false, "Print digits with Persian glyphs")
}

func (c *showInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.no < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n <no> is required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	inv, _, err := book.FindInvoice(c.no)
	if err != nil {
		return fail(err)
	}
	if c.text {
		out := renderer.InvoiceText(inv)
		if c.persian {
			out = faktur.PersianDigits(out)
		}
		fmt.Print(out)
		return subcommands.ExitSuccess
	}
	out := renderer.Invoice(inv)
	if c.persian {
		out = faktur.PersianDigits(out)
	}
	display(out, c.plain)
	return subcommands.ExitSuccess
}
