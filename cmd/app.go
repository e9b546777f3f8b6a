// Package cmd implements the CLI application to manage the inventory desk.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/mooket/beefdesk"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&inventoryCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&simulateCmd{}, "reports")
	c.Register(&briefCmd{}, "reports")

	c.Register(&paramsCmd{}, "desk")
	c.Register(&setParamsCmd{}, "desk")
	c.Register(&assignParamsCmd{}, "desk")
	c.Register(&setFloorCmd{}, "desk")
	c.Register(&setCountdownCmd{}, "desk")
	c.Register(&setPriceCmd{}, "desk")
	c.Register(&importPricesCmd{}, "desk")
	c.Register(&fmtCmd{}, "desk")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var deskFile = flag.String("desk-file", "desk.jsonl", "Path to the desk file holding lots, parameters and quotes (JSONL format)")

// DecodeDesk loads the desk from the app desk file. A missing file yields
// the built-in demo book so reports work out of the box.
func DecodeDesk() (*beefdesk.Desk, error) {
	f, err := os.Open(*deskFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, desk file does not exist, using the demo book instead")
		return beefdesk.DemoDesk(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return beefdesk.DecodeDesk(f)
}

// EncodeDesk writes the desk back to the app desk file.
func EncodeDesk(d *beefdesk.Desk) error {
	f, err := os.Create(*deskFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return beefdesk.EncodeDesk(f, d)
}

// reportErr prints the error and maps it to an exit status. Recoverable
// desk errors are usage problems, everything else is a failure.
func reportErr(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	switch {
	case errors.Is(err, beefdesk.ErrUnknownContainer),
		errors.Is(err, beefdesk.ErrUnknownParameterSet),
		errors.Is(err, beefdesk.ErrNoSummaryLot):
		return subcommands.ExitUsageError
	default:
		return subcommands.ExitFailure
	}
}
