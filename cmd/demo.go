package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/exchange"
	"github.com/etnz/exchange/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the GBCE sample market in memory" }
func (*demoCmd) Usage() string {
	return `gbce demo

  Runs the sample GBCE market entirely in memory, without touching the
  journal file: declares the five sample securities (TEA, POP, ALE, GIN,
  JOE), records trades against them, and displays the resulting market
  report. TEA pays no dividend, so its P/E ratio shows as undefined.
`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur := *defaultCurrency
	ex := exchange.New()

	securities := []exchange.Security{
		exchange.NewCommonStock("TEA", exchange.M(0, cur), exchange.M(100, cur)),
		exchange.NewCommonStock("POP", exchange.M(8, cur), exchange.M(100, cur)),
		exchange.NewCommonStock("ALE", exchange.M(23, cur), exchange.M(60, cur)),
		exchange.NewPreferredStock("GIN", exchange.M(8, cur), exchange.P(2), exchange.M(100, cur)),
		exchange.NewCommonStock("JOE", exchange.M(13, cur), exchange.M(250, cur)),
	}
	for _, sec := range securities {
		if err := ex.Register(sec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	now := time.Now()
	trades := []struct {
		symbol   string
		age      time.Duration
		quantity int
		side     exchange.Side
		price    int
	}{
		// this one is older than the quoting window, it will not quote
		{"ALE", 6 * time.Minute, 50, exchange.Buy, 65},
		{"ALE", 2 * time.Minute, 100, exchange.Buy, 70},
		{"ALE", 1 * time.Minute, 50, exchange.Sell, 72},
		{"TEA", 3 * time.Minute, 1000, exchange.Buy, 98},
		{"POP", 2 * time.Minute, 500, exchange.Sell, 122},
		{"GIN", 90 * time.Second, 200, exchange.Buy, 105},
		{"JOE", 30 * time.Second, 300, exchange.Sell, 240},
	}
	for _, t := range trades {
		_, err := ex.Record(t.symbol, now.Add(-t.age), exchange.Q(t.quantity), t.side, exchange.M(t.price, cur))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.MarketMarkdown(ex.Report(now)))
	return subcommands.ExitSuccess
}
