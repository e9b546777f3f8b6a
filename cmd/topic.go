package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mooket/beefdesk/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string           { return "topic" }
func (*topicCmd) Synopsis() string       { return "show documentation" }
func (*topicCmd) SetFlags(*flag.FlagSet) {}
func (*topicCmd) Usage() string {
	return `bfd topic <topic>

  Shows documentation for a given topic, 'readme' by default.
`
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
