package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mooket/beefdesk"
)

// setPriceCmd holds the flags for the 'set-price' subcommand.
type setPriceCmd struct {
	sku     string
	product string
	price   float64
	date    string
}

func (*setPriceCmd) Name() string     { return "set-price" }
func (*setPriceCmd) Synopsis() string { return "record a market quote for a SKU" }
func (*setPriceCmd) Usage() string {
	return `bfd set-price -sku <code> -price <cny/kg> [-d <date>]

  Records an estimated selling price. When the SKU is already quoted, the
  later observation date wins; quoting a whole-container SKU reprices the
  container's sale side.
`
}

func (c *setPriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sku, "sku", "", "SKU code, or a container id for whole-container quotes.")
	f.StringVar(&c.product, "product", "", "Product name, informational.")
	f.Float64Var(&c.price, "price", 0, "Price in CNY per kg.")
	f.StringVar(&c.date, "d", beefdesk.Today().String(), "Observation date.")
}

func (c *setPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.sku == "" {
		fmt.Fprintln(os.Stderr, "Error: -sku is required")
		return subcommands.ExitUsageError
	}
	on, err := beefdesk.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	desk.SetPrice(beefdesk.PriceEntry{
		SKU:     c.sku,
		Product: c.product,
		Price:   beefdesk.M(c.price, beefdesk.CNY),
		On:      on,
	})
	if err := EncodeDesk(desk); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Quoted %s at %.2f CNY/kg on %s\n", c.sku, c.price, on)
	return subcommands.ExitSuccess
}
