package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exchange"
	"github.com/google/subcommands"
)

type peCmd struct {
	symbol string
	price  string
}

func (*peCmd) Name() string     { return "pe" }
func (*peCmd) Synopsis() string { return "compute the P/E ratio for a given market price" }
func (*peCmd) Usage() string {
	return `gbce pe -symbol <symbol> -price <price>

  Computes the price/earnings ratio of a security for the given market
  price: price over dividend per share. The ratio is undefined for a
  security paying no dividend.
`
}

func (c *peCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol")
	f.StringVar(&c.price, "price", "", "Market price to quote against")
}

func (c *peCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	ratio, err := ex.PERatio(c.symbol, price)
	if errors.Is(err, exchange.ErrUndefined) {
		fmt.Printf("%s P/E at %s: undefined (zero dividend)\n", c.symbol, price)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s P/E at %s: %s\n", c.symbol, price, ratio.Round(2))
	return subcommands.ExitSuccess
}
