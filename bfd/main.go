// Command bfd manages an imported-beef trading desk: inventory valuation,
// financing parameters, market quotes and scenario stress runs.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/mooket/beefdesk/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "bfd")
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	commander.Register(commander.CommandsCommand(), "documentation")

	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
