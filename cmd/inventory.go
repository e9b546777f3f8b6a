package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mooket/beefdesk"
	"github.com/mooket/beefdesk/renderer"
)

// inventoryCmd holds the flags for the 'inventory' subcommand.
type inventoryCmd struct {
	date string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "value the inventory book container by container" }
func (*inventoryCmd) Usage() string {
	return `bfd inventory [-d <date>]

  Costs every lot on the given day and displays the valuation grouped by
  container, floors and countdowns included.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date, defaults to the desk's reference day.")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}

	if c.date != "" {
		on, err := beefdesk.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		desk.SetReferenceDate(on)
	}

	printMarkdown(renderer.InventoryMarkdown(desk.Valuation()))
	return subcommands.ExitSuccess
}
