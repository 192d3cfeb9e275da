package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	journal "github.com/fanorama/stock-journal"
	"github.com/google/subcommands"
)

type initCmd struct {
	name     string
	currency string
	market   string
	capital  float64
	oversell string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new journal book" }
func (*initCmd) Usage() string {
	return `tj init -name <name> -currency <code> [-market <tag>] [-capital <amount>] [-oversell reject|short]

  Creates a new journal book file with an empty portfolio. The currency is the
  book's base currency; every trade amount is recorded in it.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name for the portfolio.")
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 base currency of the book.")
	f.StringVar(&c.market, "market", "", "Market tag, e.g. IDX or NASDAQ.")
	f.Float64Var(&c.capital, "capital", 0, "Initial capital deposited in the portfolio.")
	f.StringVar(&c.oversell, "oversell", "reject", "Oversell policy: reject or short.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	policy, err := journal.ParseOversellPolicy(c.oversell)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(BookPath()); err == nil {
		fmt.Fprintf(os.Stderr, "Error: book %q already exists.\n", BookPath())
		return subcommands.ExitFailure
	}

	p := journal.NewPortfolio(c.name, c.currency, c.market, journal.M(c.capital, c.currency))
	p.Oversell = policy
	b, err := journal.NewBook(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created book %s for portfolio %q (%s)\n", BookPath(), p.Name, p.Currency)
	return subcommands.ExitSuccess
}
