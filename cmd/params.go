package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mooket/beefdesk"
)

// paramsCmd lists the desk's parameter sets.
type paramsCmd struct{}

func (*paramsCmd) Name() string           { return "params" }
func (*paramsCmd) Synopsis() string       { return "list the financing parameter sets" }
func (*paramsCmd) SetFlags(*flag.FlagSet) {}
func (*paramsCmd) Usage() string {
	return `bfd params

  Lists every parameter set with its rates and factors.
`
}

func (c *paramsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	for _, p := range desk.Params() {
		fmt.Printf("%d\t%s\trate=%.3f occupancy=%.2f storage=%.2f/t/d customs=%.2f vat=%.2f misc=%.2f/kg (daily rate %.8f)\n",
			p.ID, p.Name, p.AnnualRate, p.OccupancyRatio, p.StoragePerTonDay,
			p.CustomsFactor, p.VATFactor, p.MiscPerKg, p.DailyRate())
	}
	return subcommands.ExitSuccess
}

// setParamsCmd holds the flags for the 'set-params' subcommand.
type setParamsCmd struct {
	id        int
	name      string
	rate      float64
	occupancy float64
	storage   float64
	customs   float64
	vat       float64
	misc      float64
}

func (*setParamsCmd) Name() string     { return "set-params" }
func (*setParamsCmd) Synopsis() string { return "replace a financing parameter set" }
func (*setParamsCmd) Usage() string {
	return `bfd set-params -id <id> [-name <name>] [-rate <annual>] ...

  Replaces an existing parameter set. Every lot costed with it picks up the
  new figures on the next valuation. Omitted flags keep their current value.
`
}

func (c *setParamsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the parameter set to replace.")
	f.StringVar(&c.name, "name", "", "New display name.")
	f.Float64Var(&c.rate, "rate", -1, "Annual interest rate, e.g. 0.065.")
	f.Float64Var(&c.occupancy, "occupancy", -1, "Capital occupancy ratio, e.g. 0.90.")
	f.Float64Var(&c.storage, "storage", -1, "Storage cost, CNY per ton per day.")
	f.Float64Var(&c.customs, "customs", -1, "Customs duty multiplier, e.g. 1.12.")
	f.Float64Var(&c.vat, "vat", -1, "VAT multiplier, e.g. 1.09.")
	f.Float64Var(&c.misc, "misc", -1, "Fixed misc cost, CNY per kg.")
}

func (c *setParamsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}

	current := beefdesk.ParameterSet{}
	found := false
	for _, p := range desk.Params() {
		if p.ID == c.id {
			current, found = p, true
			break
		}
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: unknown parameter set %d\n", c.id)
		return subcommands.ExitUsageError
	}

	if c.name != "" {
		current.Name = c.name
	}
	if c.rate >= 0 {
		current.AnnualRate = c.rate
	}
	if c.occupancy >= 0 {
		current.OccupancyRatio = c.occupancy
	}
	if c.storage >= 0 {
		current.StoragePerTonDay = c.storage
	}
	if c.customs >= 0 {
		current.CustomsFactor = c.customs
	}
	if c.vat >= 0 {
		current.VATFactor = c.vat
	}
	if c.misc >= 0 {
		current.MiscPerKg = c.misc
	}

	if err := desk.ReplaceParameterSet(current); err != nil {
		return reportErr(err)
	}
	if err := EncodeDesk(desk); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Replaced parameter set %d\n", c.id)
	return subcommands.ExitSuccess
}

// assignParamsCmd holds the flags for the 'assign-params' subcommand.
type assignParamsCmd struct {
	container string
	set       int
}

func (*assignParamsCmd) Name() string     { return "assign-params" }
func (*assignParamsCmd) Synopsis() string { return "point a container at another parameter set" }
func (*assignParamsCmd) Usage() string {
	return `bfd assign-params -container <id> -set <id>

  Assigns a parameter set to every lot of a container.
`
}

func (c *assignParamsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container id.")
	f.IntVar(&c.set, "set", 0, "Parameter set id.")
}

func (c *assignParamsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	if err := desk.AssignParameterSet(c.container, c.set); err != nil {
		return reportErr(err)
	}
	if err := EncodeDesk(desk); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Container %s now uses parameter set %d\n", c.container, c.set)
	return subcommands.ExitSuccess
}
