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

type indexCmd struct {
	when string
}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "compute the GBCE All Share Index" }
func (*indexCmd) Usage() string {
	return `gbce index [-t <timestamp>]

  Computes the GBCE All Share Index at the given instant (defaults to now):
  the geometric mean of the volume weighted stock prices of every security
  that traded in the quoting window. The index is undefined when no security
  traded in the window.
`
}

func (c *indexCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.when, "t", "", "Reference instant (RFC3339), defaults to now")
}

func (c *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	index, err := ex.AllShareIndex(asOf)
	if errors.Is(err, exchange.ErrUndefined) {
		fmt.Println("All Share Index: undefined (no security traded in the quoting window)")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("All Share Index: %s\n", index.Round(4))
	return subcommands.ExitSuccess
}
