package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/exchange"
	"github.com/google/subcommands"
)

type securitiesCmd struct{}

func (*securitiesCmd) Name() string     { return "securities" }
func (*securitiesCmd) Synopsis() string { return "list the declared securities" }
func (*securitiesCmd) Usage() string {
	return `gbce securities

  Lists every security declared in the journal with its type, dividend
  terms, par value and last traded price.
`
}

func (*securitiesCmd) SetFlags(f *flag.FlagSet) {}

func (c *securitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ex, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "## Declared Securities\n\n")
	fmt.Fprintf(b, "| Symbol | Type | Last Dividend | Fixed Dividend | Par Value | Last Traded |\n")
	fmt.Fprintf(b, "|:---|:---|---:|---:|---:|---:|\n")
	for sec := range ex.Registry.Securities() {
		fixed := "-"
		if pref, ok := sec.(exchange.PreferredStock); ok {
			fixed = pref.FixedDividend().String()
		}
		last := "-"
		if price, ok := ex.Registry.LastTraded(sec.Symbol()); ok {
			last = price.String()
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			sec.Symbol(), sec.Type(), sec.LastDividend(), fixed, sec.ParValue(), last)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
