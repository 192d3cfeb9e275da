package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	journal "github.com/fanorama/stock-journal"
	"github.com/google/subcommands"
)

type noteCmd struct {
	trade     string
	sentiment string
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "attach a journal reflection to a trade" }
func (*noteCmd) Usage() string {
	return `tj note -t <trade-id-prefix> [-sentiment bullish|bearish|neutral] <text>

  Attaches a written reflection to a trade: the reasoning behind the
  execution, reviewed later against the realized outcome.
`
}

func (c *noteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.trade, "t", "", "Trade to annotate, by unique ID prefix.")
	f.StringVar(&c.sentiment, "sentiment", "", "Mood of the reflection: bullish, bearish or neutral.")
}

func (c *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.trade == "" || f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: -t and the reflection text are required.")
		return subcommands.ExitUsageError
	}
	text := strings.Join(f.Args(), " ")

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	t, err := b.FindTrade(c.trade)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	e := journal.NewEntry(b.Portfolio.ID, t.ID, text, journal.Sentiment(c.sentiment))
	if _, err := b.AddEntry(e); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Noted on %s %s x %s (%s)\n", t.Side, t.Symbol, t.Quantity, t.ID[:8])
	return subcommands.ExitSuccess
}
