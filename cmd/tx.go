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

type txCmd struct {
	period string
	start  string
	date   string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the trades in the book" }
func (*txCmd) Usage() string {
	return `tj tx [-p <period> | -s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists trades from the book with their journal reflections, with options for
  filtering and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year, ytd).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
	f.IntVar(&c.head, "head", 0, "Show only the first N trades.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N trades.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	rng, err := parseRange(c.period, c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	view := &journal.Book{Portfolio: b.Portfolio, Entries: b.Entries}
	for _, t := range b.Fmt().Trades {
		if rng.Contains(t.Time) {
			view.Trades = append(view.Trades, t)
		}
	}
	if c.head > 0 && len(view.Trades) > c.head {
		view.Trades = view.Trades[:c.head]
	}
	if c.tail > 0 && len(view.Trades) > c.tail {
		view.Trades = view.Trades[len(view.Trades)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(view))
	return subcommands.ExitSuccess
}
