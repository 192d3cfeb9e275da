package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the book file into canonical form"
}
func (*fmtCmd) Usage() string {
	return `tj fmt

  Validates and formats the book file. This command reads all records,
  validates them, sorts trades by execution time and reflections by creation
  time, and writes the book back in a canonical JSONL form. Formatting an
  already canonical book is a no-op, byte for byte.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b.Fmt()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s\n", BookPath())
	return subcommands.ExitSuccess
}
