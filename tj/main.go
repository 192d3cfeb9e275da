// tj is a personal stock trading journal: record executions, write down the
// reasoning behind them, and review the resulting performance.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fanorama/stock-journal/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Local overrides for API keys and file paths; a missing .env is fine.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it exits the process when invoked by the
// shell's completion hook and is a no-op otherwise.
func completion() {
	sub := func() *complete.Command {
		return &complete.Command{Flags: map[string]complete.Predictor{
			"p": predict.Set{"day", "week", "month", "quarter", "year", "ytd"},
			"s": predict.Nothing,
			"d": predict.Nothing,
		}}
	}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"init": {Flags: map[string]complete.Predictor{
				"name":     predict.Nothing,
				"currency": predict.Set{"USD", "EUR", "IDR", "JPY", "GBP"},
				"market":   predict.Nothing,
				"capital":  predict.Nothing,
				"oversell": predict.Set{"reject", "short"},
			}},
			"buy":       {},
			"sell":      {},
			"note":      {},
			"tx":        sub(),
			"positions": {},
			"summary":   sub(),
			"metrics":   sub(),
			"fetch":     {},
			"watch":     {},
			"assist":    {},
			"fmt":       {},
			"topic":     {},
		},
		Flags: map[string]complete.Predictor{
			"book":   predict.Files("*.jsonl"),
			"prices": predict.Files("*.json"),
		},
	}
	root.Complete("tj")
}
