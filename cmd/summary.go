package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fanorama/stock-journal/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	period string
	start  string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio dashboard" }
func (*summaryCmd) Usage() string {
	return `tj summary [-p <period> | -s <start_date>] [-d <end_date>]

  Displays the portfolio dashboard: valuation, realized and unrealized P&L
  and the headline performance metrics. Without a range flag the metrics
  cover the whole history; the valuation always does.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year, ytd).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	snap, err := b.Snapshot(DecodePrices(b.Portfolio.Currency), rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	printMarkdown(renderer.SummaryMarkdown(b.Portfolio, snap))
	return subcommands.ExitSuccess
}
