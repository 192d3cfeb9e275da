package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	journal "github.com/fanorama/stock-journal"
	"github.com/fanorama/stock-journal/renderer"
	"github.com/google/subcommands"
)

type watchCmd struct {
	url string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "follow a live price feed and reprint the positions" }
func (*watchCmd) Usage() string {
	return `tj watch -url <websocket-url>

  Subscribes to a live quote stream and reprints the open positions with
  fresh unrealized P&L on every update for a symbol the book holds.
  Interrupt to stop.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Websocket URL of the quote stream.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		fmt.Fprintln(os.Stderr, "Error: -url is required.")
		return subcommands.ExitUsageError
	}
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	// Seed with the last fetched prices; the stream then overrides per symbol.
	prices := DecodePrices(b.Portfolio.Currency)
	if prices == nil {
		prices = make(map[string]journal.Money)
	}
	held := make(map[string]bool)
	for _, symbol := range bookSymbols(b) {
		held[symbol] = true
	}

	feed := &journal.PriceFeed{URL: c.url}
	updates := make(chan journal.PriceUpdate, 16)
	errc := make(chan error, 1)
	go func() { errc <- feed.Run(ctx, updates) }()

	for update := range updates {
		if !held[update.Symbol] {
			continue
		}
		prices[update.Symbol] = journal.M(update.Price, b.Portfolio.Currency)
		snap, err := b.Snapshot(prices, journal.AllTime())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}
		fmt.Printf("%s %s (%+.2f)\n", update.Timestamp.Format("15:04:05"), update.Symbol, update.Change)
		printMarkdown(renderer.PositionsMarkdown(snap))
	}

	if err := <-errc; err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
