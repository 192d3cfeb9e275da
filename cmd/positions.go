package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	journal "github.com/fanorama/stock-journal"
	"github.com/fanorama/stock-journal/renderer"
	"github.com/google/subcommands"
)

type positionsCmd struct{}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display open positions and unrealized P&L" }
func (*positionsCmd) Usage() string {
	return `tj positions

  Displays the open positions with their unrealized P&L against the latest
  fetched prices. Symbols without a price are listed as unpriced, never
  valued at zero.
`
}

func (*positionsCmd) SetFlags(*flag.FlagSet) {}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	snap, err := b.Snapshot(DecodePrices(b.Portfolio.Currency), journal.AllTime())
	if err != nil {
		// The healthy symbols are still printed.
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	printMarkdown(renderer.PositionsMarkdown(snap))
	return subcommands.ExitSuccess
}
