package cmd

import (
	"context"
	"flag"
	"time"

	journal "github.com/fanorama/stock-journal"
	"github.com/google/subcommands"
)

type sellCmd struct{ tradeFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell execution" }
func (*sellCmd) Usage() string {
	return `tj sell -s <symbol> -q <quantity> -p <price> [-fee <fee>] [-d <date>] [-note <text>]

  Records a sell in the journal book. A sell exceeding the open quantity is
  rejected unless the portfolio was created with the short oversell policy.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(func(b *journal.Book, at time.Time) journal.Trade {
		cur := b.Portfolio.Currency
		return journal.NewSell(b.Portfolio.ID, c.symbol, journal.Q(c.quantity),
			journal.M(c.price, cur), journal.M(c.fee, cur), at)
	})
}
