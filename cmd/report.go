package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exchange/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	when string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full market report" }
func (*reportCmd) Usage() string {
	return `gbce report [-t <timestamp>]

  Displays every registered security with its dividend terms, last traded
  price, yield, P/E ratio and volume weighted price, followed by the
  All Share Index. Undefined metrics show as '-'.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.when, "t", "", "Reference instant (RFC3339), defaults to now")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.MarketMarkdown(ex.Report(asOf)))
	return subcommands.ExitSuccess
}
