package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fanorama/stock-journal/renderer"
	"github.com/google/subcommands"
)

type metricsCmd struct {
	period string
	start  string
	date   string
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "display performance metrics over closed positions" }
func (*metricsCmd) Usage() string {
	return `tj metrics [-p <period> | -s <start_date>] [-d <end_date>]

  Displays win rate, average gain and loss, profit factor and holding
  period over the closed positions of the range. Metrics that do not exist
  for the range (no closed positions, no losses) are shown as such, never
  as a made-up number.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year, ytd).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	snap, err := b.Snapshot(nil, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	printMarkdown(renderer.MetricsMarkdown(snap.Metrics, rng) + "\n" + renderer.RealizedMarkdown(snap.Realized))
	return subcommands.ExitSuccess
}
