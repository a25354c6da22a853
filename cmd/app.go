// Package cmd implements the CLI application to manage the invoice book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hqassab/faktur"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listNamesCmd{kind: customers}, "customers & products")
	c.Register(&addNameCmd{kind: customers}, "customers & products")
	c.Register(&renameNameCmd{kind: customers}, "customers & products")
	c.Register(&rmNameCmd{kind: customers}, "customers & products")
	c.Register(&listNamesCmd{kind: products}, "customers & products")
	c.Register(&addNameCmd{kind: products}, "customers & products")
	c.Register(&renameNameCmd{kind: products}, "customers & products")
	c.Register(&rmNameCmd{kind: products}, "customers & products")

	c.Register(&newInvoiceCmd{}, "invoices")
	c.Register(&editInvoiceCmd{}, "invoices")
	c.Register(&rmInvoiceCmd{}, "invoices")
	c.Register(&showInvoiceCmd{}, "invoices")

	c.Register(&reportCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "book.json", "Path to the book file holding customers, products and invoices")

// openBook loads the book from the -book-file store, reconciling the
// invoice counter on the way.
func openBook() (*faktur.Book, error) {
	return faktur.Open(faktur.NewStore(*bookFile))
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// display renders a markdown document for the terminal. With plain set, or
// when the terminal renderer fails, the raw markdown is printed instead.
func display(markdown string, plain bool) {
	if !plain {
		if out, err := glamour.Render(markdown, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(markdown)
}
