package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole book as a JSON snapshot" }
func (*exportCmd) Usage() string {
	return `fk export [-o <file>]

  Writes the customers, products and invoices as one portable JSON
  snapshot, to stdout or to the given file. The snapshot is what import
  reads back.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Destination file (default stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	w := os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		w = file
	}
	if err := book.WriteSnapshot(w); err != nil {
		return fail(err)
	}
	if c.out != "" {
		fmt.Printf("Exported book to %s\n", c.out)
	}
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the book with a JSON snapshot" }
func (*importCmd) Usage() string {
	return `fk import <file>

  Replaces the whole book with the given snapshot. The snapshot may be the
  canonical export shape or a bare array of invoices; field aliases from
  older exports and localized digits are accepted. A snapshot that cannot
  be recognized is rejected and the book is left untouched.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one snapshot file argument.")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	n, err := book.Import(file)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d invoices from %s\n", n, f.Arg(0))
	return subcommands.ExitSuccess
}
