package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hqassab/faktur"
)

// nameKind parametrizes the registry commands: customers and products have
// the exact same command set.
type nameKind struct {
	singular string
	plural   string
	registry func(*faktur.Book) faktur.Registry
}

var (
	customers = nameKind{"customer", "customers", (*faktur.Book).Customers}
	products  = nameKind{"product", "products", (*faktur.Book).Products}
)

// listNamesCmd prints the registry entries with their position.
type listNamesCmd struct {
	kind nameKind
}

func (c *listNamesCmd) Name() string { return c.kind.plural }
func (c *listNamesCmd) Synopsis() string {
	return "list the " + c.kind.plural + " with their position"
}
func (c *listNamesCmd) Usage() string {
	return `fk ` + c.kind.plural + `

  Lists all ` + c.kind.plural + ` in insertion order. The printed position
  is the one expected by the -i flag of rename-` + c.kind.singular + ` and rm-` + c.kind.singular + `.
`
}
func (c *listNamesCmd) SetFlags(*flag.FlagSet) {}

func (c *listNamesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	all := c.kind.registry(book).All()
	if len(all) == 0 {
		fmt.Printf("No %s yet.\n", c.kind.plural)
		return subcommands.ExitSuccess
	}
	for i, name := range all {
		fmt.Printf("%3d  %s\n", i+1, name)
	}
	return subcommands.ExitSuccess
}

// addNameCmd appends a new registry entry.
type addNameCmd struct {
	kind nameKind
}

func (c *addNameCmd) Name() string     { return "add-" + c.kind.singular }
func (c *addNameCmd) Synopsis() string { return "add a new " + c.kind.singular }
func (c *addNameCmd) Usage() string {
	return `fk add-` + c.kind.singular + ` <name>

  Adds a new ` + c.kind.singular + `. The name is trimmed and must not
  collide with an existing one.
`
}
func (c *addNameCmd) SetFlags(*flag.FlagSet) {}

func (c *addNameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one name argument.\n")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := c.kind.registry(book).Add(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Printf("Added %s %q\n", c.kind.singular, f.Arg(0))
	return subcommands.ExitSuccess
}

// renameNameCmd replaces a registry entry in place. Invoices referencing
// the old name keep it.
type renameNameCmd struct {
	kind nameKind
	pos  int
}

func (c *renameNameCmd) Name() string     { return "rename-" + c.kind.singular }
func (c *renameNameCmd) Synopsis() string { return "rename a " + c.kind.singular }
func (c *renameNameCmd) Usage() string {
	return `fk rename-` + c.kind.singular + ` -i <position> <new-name>

  Renames the ` + c.kind.singular + ` at the given position (as printed by
  the ` + c.kind.plural + ` command). Historical invoices keep the old name.
`
}

func (c *renameNameCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.pos, "i", 0, "Position of the "+c.kind.singular+" to rename (required)")
}

func (c *renameNameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.pos < 1 || f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: -i <position> and a new name are required.\n")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	reg := c.kind.registry(book)
	old, err := reg.At(c.pos - 1)
	if err != nil {
		return fail(err)
	}
	if err := reg.Rename(c.pos-1, f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Printf("Renamed %s %q to %q\n", c.kind.singular, old, f.Arg(0))
	return subcommands.ExitSuccess
}

// rmNameCmd removes a registry entry. No cascade: invoices keep the name.
type rmNameCmd struct {
	kind nameKind
	pos  int
}

func (c *rmNameCmd) Name() string     { return "rm-" + c.kind.singular }
func (c *rmNameCmd) Synopsis() string { return "remove a " + c.kind.singular }
func (c *rmNameCmd) Usage() string {
	return `fk rm-` + c.kind.singular + ` -i <position>

  Removes the ` + c.kind.singular + ` at the given position. Historical
  invoices keep the removed name as text.
`
}

func (c *rmNameCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.pos, "i", 0, "Position of the "+c.kind.singular+" to remove (required)")
}

func (c *rmNameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.pos < 1 {
		fmt.Fprintf(os.Stderr, "Error: -i <position> is required.\n")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	reg := c.kind.registry(book)
	old, err := reg.At(c.pos - 1)
	if err != nil {
		return fail(err)
	}
	if err := reg.Remove(c.pos - 1); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed %s %q\n", c.kind.singular, old)
	return subcommands.ExitSuccess
}
