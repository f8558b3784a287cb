package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/exchange"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type declareCmd struct {
	symbol   string
	typ      string
	dividend string
	fixed    string
	par      string
}

func (*declareCmd) Name() string     { return "declare-security" }
func (*declareCmd) Synopsis() string { return "declare a security tradeable on the exchange" }
func (*declareCmd) Usage() string {
	return `gbce declare-security -symbol <symbol> -type <common|preferred> -dividend <amount> [-fixed <percent>] -par <amount>

  Declares a security, fixing its dividend terms and par value. A security
  must be declared before any trade references it. Preferred securities
  require a fixed dividend rate; common securities must not carry one.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol to declare (e.g. 'GIN')")
	f.StringVar(&c.typ, "type", "common", "Security type: common or preferred")
	f.StringVar(&c.dividend, "dividend", "0", "Last dividend, per share")
	f.StringVar(&c.fixed, "fixed", "", "Fixed dividend rate in percent (preferred only, e.g. '2')")
	f.StringVar(&c.par, "par", "", "Par value (required)")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.par == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol and -par flags are required.")
		return subcommands.ExitUsageError
	}

	typ, err := exchange.ParseSecurityType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	dividend, err := decimal.NewFromString(c.dividend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing dividend %q: %v\n", c.dividend, err)
		return subcommands.ExitUsageError
	}
	par, err := decimal.NewFromString(c.par)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing par value %q: %v\n", c.par, err)
		return subcommands.ExitUsageError
	}

	var sec exchange.Security
	switch typ {
	case exchange.Common:
		if c.fixed != "" {
			fmt.Fprintln(os.Stderr, "Error: -fixed only applies to preferred securities.")
			return subcommands.ExitUsageError
		}
		sec = exchange.NewCommonStock(c.symbol, exchange.M(dividend, *defaultCurrency), exchange.M(par, *defaultCurrency))
	case exchange.Preferred:
		if c.fixed == "" {
			fmt.Fprintln(os.Stderr, "Error: -fixed is required for preferred securities.")
			return subcommands.ExitUsageError
		}
		fixed, err := decimal.NewFromString(c.fixed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing fixed dividend %q: %v\n", c.fixed, err)
			return subcommands.ExitUsageError
		}
		sec = exchange.NewPreferredStock(c.symbol, exchange.M(dividend, *defaultCurrency), exchange.P(fixed), exchange.M(par, *defaultCurrency))
	}

	// Replay the journal and register against it, so that a duplicate or
	// malformed declaration is rejected before touching the file.
	ex, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ex.Register(sec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	status := appendJournal(func(w io.Writer) error { return exchange.EncodeSecurity(w, sec) })
	if status == subcommands.ExitSuccess {
		fmt.Printf("Declared %s security %s (dividend %s, par %s)\n", sec.Type(), sec.Symbol(), sec.LastDividend(), sec.ParValue())
	}
	return status
}
