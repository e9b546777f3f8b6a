package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mooket/beefdesk"
	"github.com/mooket/beefdesk/commentary"
)

const gemini_api_key = "GEMINI_API_KEY"

var geminiApiFlag = flag.String("gemini-api-key", "", "Gemini API key used for the daily strategy note.\n If missing it will read the environment variable \""+gemini_api_key+"\".")

func geminiApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *geminiApiFlag == "" {
		*geminiApiFlag = os.Getenv(gemini_api_key)
	}
	return *geminiApiFlag
}

// briefCmd holds the flags for the 'brief' subcommand.
type briefCmd struct {
	domestic float64
	prompt   bool
}

func (*briefCmd) Name() string     { return "brief" }
func (*briefCmd) Synopsis() string { return "generate the daily strategy note" }
func (*briefCmd) Usage() string {
	return `bfd brief [-domestic <cny/kg>] [-prompt]

  Asks the strategist model for the daily note on the current book. Without
  an API key, or when the model is unreachable, a fixed notice is printed
  instead; the command never fails on model trouble.
`
}

func (c *briefCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.domestic, "domestic", 66.6, "Domestic wholesale reference price, CNY per kg, anchors the spread.")
	f.BoolVar(&c.prompt, "prompt", false, "Print the briefing prompt instead of calling the model.")
}

func (c *briefCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}

	snap := commentary.SnapshotOf(desk.Valuation(), beefdesk.DemoIndex(),
		beefdesk.DemoPositions(), beefdesk.DemoFactors(), c.domestic)

	if c.prompt {
		fmt.Print(commentary.BuildPrompt(snap))
		return subcommands.ExitSuccess
	}

	g := commentary.Generator{APIKey: geminiApiKey()}
	printMarkdown(g.Generate(ctx, snap))
	return subcommands.ExitSuccess
}
