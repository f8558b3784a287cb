package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/exchange"
	"github.com/etnz/exchange/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	symbol string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the trades recorded in the journal" }
func (*txCmd) Usage() string {
	return `gbce tx [-symbol <symbol>] [-head <n>] [-tail <n>]

  Lists recorded trades in recording order, with options for filtering by
  symbol and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Show only trades for this symbol.")
	f.IntVar(&c.head, "head", 0, "Show only the first N trades.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N trades.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ex, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var trades []exchange.Trade
	if c.symbol != "" {
		trades = slices.Collect(ex.Ledger.Trades(c.symbol))
	} else {
		trades = slices.Collect(ex.Ledger.All())
	}

	if c.head > 0 && c.head < len(trades) {
		trades = trades[:c.head]
	}
	if c.tail > 0 && c.tail < len(trades) {
		trades = trades[len(trades)-c.tail:]
	}

	printMarkdown(renderer.TradesMarkdown(trades))
	return subcommands.ExitSuccess
}
