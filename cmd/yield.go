package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type yieldCmd struct {
	symbol string
	price  string
}

func (*yieldCmd) Name() string     { return "yield" }
func (*yieldCmd) Synopsis() string { return "compute the dividend yield for a given market price" }
func (*yieldCmd) Usage() string {
	return `gbce yield -symbol <symbol> -price <price>

  Computes the dividend yield of a security for the given market price:
  last dividend over price for common stocks, fixed dividend times par value
  over price for preferred stocks.
`
}

func (c *yieldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol")
	f.StringVar(&c.price, "price", "", "Market price to quote against")
}

func (c *yieldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol and -price flags are required.")
		return subcommands.ExitUsageError
	}
	price, err := parsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ex, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	yield, err := ex.DividendYield(c.symbol, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s yield at %s: %s\n", c.symbol, price, yield.Round(4))
	return subcommands.ExitSuccess
}
