package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/mooket/beefdesk"
)

// importPricesCmd holds the flags for the 'import-prices' subcommand.
type importPricesCmd struct {
	file  string
	path  string
	sku   string
	price string
	date  string
}

func (*importPricesCmd) Name() string     { return "import-prices" }
func (*importPricesCmd) Synopsis() string { return "import market quotes from a JSON export" }
func (*importPricesCmd) Usage() string {
	return `bfd import-prices -file <quotes.json> [-path <jsonpath>] [-sku <field>] [-price <field>] [-date <field>]

  Reads quotes from a JSON export, typically a price-sheet dump, and records
  them in the desk. -path selects the array of quote objects; the field
  flags name the keys inside each object.
`
}

func (c *importPricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON file holding the quotes.")
	f.StringVar(&c.path, "path", "$[*]", "JSONPath to the array of quote objects.")
	f.StringVar(&c.sku, "sku", "sku", "Field holding the SKU code.")
	f.StringVar(&c.price, "price", "price", "Field holding the price in CNY per kg.")
	f.StringVar(&c.date, "date", "date", "Field holding the observation date.")
}

func (c *importPricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(c.path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.path, err)
		return subcommands.ExitUsageError
	}
	jlist, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer, accept a lone object too.
		jlist = []any{jval}
	}

	desk, err := DecodeDesk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}

	imported := 0
	for _, item := range jlist {
		obj, ok := item.(map[string]any)
		if !ok {
			fmt.Fprintf(os.Stderr, "skipping non-object quote %v\n", item)
			continue
		}
		sku, _ := obj[c.sku].(string)
		if sku == "" {
			fmt.Fprintf(os.Stderr, "skipping quote without %q: %v\n", c.sku, obj)
			continue
		}
		price, ok := obj[c.price].(float64)
		if !ok {
			fmt.Fprintf(os.Stderr, "skipping %s: %q is not a number\n", sku, c.price)
			continue
		}
		on := beefdesk.Today()
		if s, ok := obj[c.date].(string); ok {
			parsed, err := beefdesk.ParseDate(s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", sku, err)
				continue
			}
			on = parsed
		}
		product, _ := obj["product"].(string)
		desk.SetPrice(beefdesk.PriceEntry{
			SKU:     sku,
			Product: product,
			Price:   beefdesk.M(price, beefdesk.CNY),
			On:      on,
		})
		imported++
	}

	if err := EncodeDesk(desk); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing desk %q: %v\n", *deskFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d quotes from %s\n", imported, c.file)
	return subcommands.ExitSuccess
}
