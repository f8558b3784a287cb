package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/exchange"
	"github.com/google/subcommands"
)

// tradeCmd is the shared implementation of the buy and sell subcommands.
type tradeCmd struct {
	side     exchange.Side
	symbol   string
	quantity string
	price    string
	when     string
}

func newBuyCmd() *tradeCmd  { return &tradeCmd{side: exchange.Buy} }
func newSellCmd() *tradeCmd { return &tradeCmd{side: exchange.Sell} }

func (c *tradeCmd) Name() string { return strings.ToLower(string(c.side)) }
func (c *tradeCmd) Synopsis() string {
	return fmt.Sprintf("record a %s trade in the journal", c.Name())
}
func (c *tradeCmd) Usage() string {
	name := c.Name()
	return fmt.Sprintf(`gbce %s -symbol <symbol> -q <quantity> -price <price> [-t <timestamp>]

  Records a %s trade against a declared security and updates its last traded
  price. The timestamp defaults to now; a trade may be recorded late, its
  timestamp is what the quoting window looks at.
`, name, name)
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol (e.g. 'ALE')")
	f.StringVar(&c.quantity, "q", "", "Number of shares traded")
	f.StringVar(&c.price, "price", "", "Traded price, per share")
	f.StringVar(&c.when, "t", "", "Trade timestamp (RFC3339), defaults to now")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol, -q, and -price flags are all required.")
		return subcommands.ExitUsageError
	}

	quantity, err := parseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := parsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	timestamp, err := parseAsOf(c.when)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ex, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	trade, err := ex.Record(c.symbol, timestamp, quantity, c.side, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	status := appendJournal(func(w io.Writer) error { return exchange.EncodeTrade(w, trade) })
	if status == subcommands.ExitSuccess {
		fmt.Printf("Recorded %s\n", trade)
	}
	return status
}
