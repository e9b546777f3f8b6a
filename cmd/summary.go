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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the desk morning sheet" }
func (*summaryCmd) Usage() string {
	return `bfd summary [-d <date>]

  Displays the import price index, the position book, the factor watchlist
  and the inventory bottom line.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date, defaults to the desk's reference day.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	md := renderer.SummaryMarkdown(desk.Valuation(), beefdesk.DemoIndex(), beefdesk.DemoPositions(), beefdesk.DemoFactors())
	printMarkdown(md)
	return subcommands.ExitSuccess
}
