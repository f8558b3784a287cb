// Package cmd implements the CLI application to operate a GBCE trade journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/exchange"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&declareCmd{}, "securities")
	c.Register(&securitiesCmd{}, "securities")

	c.Register(newBuyCmd(), "trades")
	c.Register(newSellCmd(), "trades")
	c.Register(&txCmd{}, "trades")
	c.Register(&fmtCmd{}, "trades")

	c.Register(&yieldCmd{}, "metrics")
	c.Register(&peCmd{}, "metrics")
	c.Register(&vwspCmd{}, "metrics")
	c.Register(&indexCmd{}, "metrics")
	c.Register(&reportCmd{}, "metrics")

	c.Register(&demoCmd{}, "documentation")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal-file", "journal.jsonl", "Path to the trade journal file (JSONL format)")
var defaultCurrency = flag.String("currency", "GBP", "Currency used for prices and dividends")

// DecodeJournal loads the exchange state by replaying the app journal file.
func DecodeJournal() (*exchange.Exchange, error) {
	f, err := os.Open(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, journal does not exist, starting from an empty exchange instead")
		return exchange.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open journal %q: %w", *journalFile, err)
	}
	defer f.Close()

	ex, err := exchange.DecodeJournal(f)
	if err != nil {
		return nil, fmt.Errorf("could not read journal %q: %w", *journalFile, err)
	}
	return ex, nil
}

// appendJournal appends an already-validated journal line to the app journal file.
func appendJournal(encode func(io.Writer) error) subcommands.ExitStatus {
	f, err := os.OpenFile(*journalFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseAsOf parses the reference instant flag, defaulting to now. The clock
// is read here, in the driver: the exchange itself never reads it.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(exchange.TimestampFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q (want RFC3339, e.g. 2026-08-30T10:00:00Z): %w", s, err)
	}
	return t, nil
}

// parsePrice parses a decimal price flag in the app currency.
func parsePrice(s string) (exchange.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return exchange.Money{}, fmt.Errorf("bad price %q: %w", s, err)
	}
	return exchange.M(d, *defaultCurrency), nil
}

// parseQuantity parses a decimal quantity flag.
func parseQuantity(s string) (exchange.Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return exchange.Quantity{}, fmt.Errorf("bad quantity %q: %w", s, err)
	}
	return exchange.Q(d), nil
}

// printMarkdown renders a markdown string to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
