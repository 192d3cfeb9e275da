package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	journal "github.com/fanorama/stock-journal"
	"github.com/google/subcommands"
)

// tradeFlags are the flags shared by the buy and sell subcommands.
type tradeFlags struct {
	symbol   string
	quantity float64
	price    float64
	fee      float64
	date     string
	note     string
}

func (c *tradeFlags) set(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol, e.g. BBCA.")
	f.Float64Var(&c.quantity, "q", 0, "Number of units.")
	f.Float64Var(&c.price, "p", 0, "Price per unit.")
	f.Float64Var(&c.fee, "fee", 0, "Total execution fee.")
	f.StringVar(&c.date, "d", "today", "Execution date (YYYY-MM-DD or today).")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the trade.")
}

// record loads the book, appends the trade built by 'make' and saves it back.
func (c *tradeFlags) record(make func(b *journal.Book, at time.Time) journal.Trade) subcommands.ExitStatus {
	c.symbol = strings.ToUpper(c.symbol)
	at, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	t := make(b, at)
	t.Note = c.note
	t, err = b.AddTrade(t)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s x %s at %s (trade %s)\n", t.Side, t.Symbol, t.Quantity, t.Price, t.ID[:8])
	return subcommands.ExitSuccess
}

type buyCmd struct{ tradeFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy execution" }
func (*buyCmd) Usage() string {
	return `tj buy -s <symbol> -q <quantity> -p <price> [-fee <fee>] [-d <date>] [-note <text>]

  Records a buy in the journal book.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(func(b *journal.Book, at time.Time) journal.Trade {
		cur := b.Portfolio.Currency
		return journal.NewBuy(b.Portfolio.ID, c.symbol, journal.Q(c.quantity),
			journal.M(c.price, cur), journal.M(c.fee, cur), at)
	})
}
