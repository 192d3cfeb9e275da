package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	journal "github.com/fanorama/stock-journal"
	"github.com/google/subcommands"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch the latest prices for the book's symbols" }
func (*fetchCmd) Usage() string {
	return `tj fetch [symbol ...]

  Fetches the latest quote for every symbol traded in the book (or for the
  given symbols only) and writes the prices file used by summary and
  positions. Symbols that cannot be quoted are reported and skipped.
`
}

func (*fetchCmd) SetFlags(*flag.FlagSet) {}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = bookSymbols(b)
	}
	if len(symbols) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to fetch: the book has no trades.")
		return subcommands.ExitSuccess
	}

	snap, err := journal.FetchPrices(journal.NewChartQuotes(), symbols, b.Portfolio.Currency)
	if err != nil {
		// Partial snapshots are still worth saving.
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	if len(snap.Prices) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no symbol could be quoted.")
		return subcommands.ExitFailure
	}

	out, err := os.Create(PricesPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := journal.EncodePrices(out, snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Fetched %d price(s) into %s\n", len(snap.Prices), PricesPath())
	return subcommands.ExitSuccess
}
