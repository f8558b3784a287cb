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

type vwspCmd struct {
	symbol string
	when   string
}

func (*vwspCmd) Name() string     { return "vwsp" }
func (*vwspCmd) Synopsis() string { return "compute the volume weighted stock price" }
func (*vwspCmd) Usage() string {
	return `gbce vwsp -symbol <symbol> [-t <timestamp>]

  Computes the volume weighted stock price over the 5 minute quoting window
  ending at the given instant (defaults to now). The price is undefined when
  no trade falls in the window.
`
}

func (c *vwspCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol")
	f.StringVar(&c.when, "t", "", "Window end (RFC3339), defaults to now")
}

func (c *vwspCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol flag is required.")
		return subcommands.ExitUsageError
	}
	asOf, err := parseAsOf(c.when)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ex, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	vwsp, err := ex.VWSP(c.symbol, asOf)
	if errors.Is(err, exchange.ErrUndefined) {
		fmt.Printf("%s VWSP: undefined (no trade in the quoting window)\n", c.symbol)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s VWSP: %s\n", c.symbol, vwsp)
	return subcommands.ExitSuccess
}
