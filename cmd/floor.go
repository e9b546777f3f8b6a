package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mooket/beefdesk"
)

// setFloorCmd holds the flags for the 'set-floor' subcommand.
type setFloorCmd struct {
	container string
	amount    float64
}

func (*setFloorCmd) Name() string     { return "set-floor" }
func (*setFloorCmd) Synopsis() string { return "set a container's payment floor" }
func (*setFloorCmd) Usage() string {
	return `bfd set-floor -container <id> -amount <cny>

  Records the amount already retained by the funder on a container. The
  floor lives on the whole-container record; a container made of detail
  lines only cannot hold one.
`
}

func (c *setFloorCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container id.")
	f.Float64Var(&c.amount, "amount", 0, "Floor amount in CNY.")
}

func (c *setFloorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	if err := desk.SetPaymentFloor(c.container, beefdesk.M(c.amount, beefdesk.CNY)); err != nil {
		return reportErr(err)
	}
	if err := EncodeDesk(desk); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Floor on %s set to %.2f CNY\n", c.container, c.amount)
	return subcommands.ExitSuccess
}

// setCountdownCmd holds the flags for the 'set-countdown' subcommand.
type setCountdownCmd struct {
	container string
	days      int
}

func (*setCountdownCmd) Name() string     { return "set-countdown" }
func (*setCountdownCmd) Synopsis() string { return "set a container's capital countdown" }
func (*setCountdownCmd) Usage() string {
	return `bfd set-countdown -container <id> -days <n>

  Sets the contractual countdown, in days, on a container's
  whole-container record.
`
}

func (c *setCountdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container id.")
	f.IntVar(&c.days, "days", 0, "Countdown in days.")
}

func (c *setCountdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	if err := desk.SetCountdown(c.container, c.days); err != nil {
		return reportErr(err)
	}
	if err := EncodeDesk(desk); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Countdown on %s set to %d days\n", c.container, c.days)
	return subcommands.ExitSuccess
}
