package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exchange"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the journal file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `gbce fmt

  Validates and formats the journal file. This command replays all commands,
  then writes them back in a canonical JSONL form: declarations sorted by
  symbol first, then trades sorted by timestamp.

  Note that reordering trades by timestamp can change which trade is the
  last recorded one, and with it the last traded price of a security whose
  trades were journaled out of order.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ex, err := DecodeJournal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load journal: %v\n", err)
		return subcommands.ExitFailure
	}

	tmp := *journalFile + ".tmp"
	fo, err := os.Create(tmp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := exchange.EncodeJournal(fo, ex); err != nil {
		fo.Close()
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := fo.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(tmp, *journalFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted journal %q: %d securities, %d trades.\n", *journalFile, ex.Registry.Len(), ex.Ledger.Len())
	return subcommands.ExitSuccess
}
