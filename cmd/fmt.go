package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd rewrites the desk file in canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string           { return "fmt" }
func (*fmtCmd) Synopsis() string       { return "rewrite the desk file in canonical order" }
func (*fmtCmd) SetFlags(*flag.FlagSet) {}
func (*fmtCmd) Usage() string {
	return `bfd fmt

  Decodes and re-encodes the desk file: reference day first, then parameter
  sets, quotes and lots, one JSON object per line. Useful after hand edits
  to keep diffs small.
`
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	if err := EncodeDesk(desk); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s\n", *deskFile)
	return subcommands.ExitSuccess
}
