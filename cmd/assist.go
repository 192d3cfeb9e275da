package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	journal "github.com/fanorama/stock-journal"
	"github.com/fanorama/stock-journal/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the trading coach" }
func (*assistCmd) Usage() string {
	return `tj assist [initial question]

  Starts an interactive session with the AI trading coach. The coach reads
  the journal book and compares your written reflections with the realized
  outcomes. Requires Gemini API credentials in the environment.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	source := func() (*journal.Book, map[string]journal.Money, error) {
		b, err := DecodeBook()
		if err != nil {
			return nil, nil, err
		}
		return b, DecodePrices(b.Portfolio.Currency), nil
	}
	coach := agent.NewCoach(source)
	analyst := agent.NewAnalyst()
	a := agent.New(os.Stdout, os.Stdin, coach, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
