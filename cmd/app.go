// Package cmd implements the CLI application to keep a stock trading journal.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	journal "github.com/fanorama/stock-journal"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application. A main package registers
// them on its commander.
var Commands = []subcommands.Command{
	&initCmd{},
	&buyCmd{},
	&sellCmd{},
	&noteCmd{},
	&txCmd{},
	&positionsCmd{},
	&summaryCmd{},
	&metricsCmd{},
	&fetchCmd{},
	&watchCmd{},
	&assistCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book", "journal.jsonl", "Path to the journal book file (JSONL format)")
var pricesFile = flag.String("prices", "prices.json", "Path to the latest prices file")

const (
	EnvBookFile   = "TJ_BOOK_FILE"
	EnvPricesFile = "TJ_PRICES_FILE"
)

// BookPath resolves the book file, the environment overriding the default
// flag value so extensions and scripts can point at another journal.
func BookPath() string {
	if *bookFile == "journal.jsonl" {
		if env := os.Getenv(EnvBookFile); env != "" {
			return env
		}
	}
	return *bookFile
}

// PricesPath resolves the prices file like BookPath does the book.
func PricesPath() string {
	if *pricesFile == "prices.json" {
		if env := os.Getenv(EnvPricesFile); env != "" {
			return env
		}
	}
	return *pricesFile
}

// DecodeBook loads the journal book from the app book path.
func DecodeBook() (*journal.Book, error) {
	f, err := os.Open(BookPath())
	if err != nil {
		return nil, fmt.Errorf("could not open book %q: %w", BookPath(), err)
	}
	defer f.Close()
	b, err := journal.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not read book %q: %w", BookPath(), err)
	}
	return b, nil
}

// EncodeBook writes the book back to the app book path, in canonical form.
func EncodeBook(b *journal.Book) error {
	tmp := BookPath() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", tmp, err)
	}
	if err := journal.EncodeBook(f, b); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not write book: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, BookPath())
}

// DecodePrices loads the latest known prices, tagged with the book currency.
// A missing file is not an error: reports degrade to "price unavailable".
func DecodePrices(currency string) map[string]journal.Money {
	f, err := os.Open(PricesPath())
	if err != nil {
		return nil
	}
	defer f.Close()
	snap, err := journal.DecodePrices(f, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring prices file %q: %v\n", PricesPath(), err)
		return nil
	}
	return snap.Prices
}

// parseDate accepts YYYY-MM-DD or the literal "today". An empty string is the
// zero time.
func parseDate(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return time.Time{}, nil
	case "today":
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// parseRange combines the -p/-s/-d reporting flags into a Range. With no flag
// set it returns the all-time range. The period "ytd" is year to date.
func parseRange(period, start, end string) (journal.Range, error) {
	if period == "" && start == "" && end == "" {
		return journal.AllTime(), nil
	}

	endDate, err := parseDate(end)
	if err != nil {
		return journal.Range{}, err
	}
	if endDate.IsZero() {
		endDate = time.Now().UTC()
	}

	if start != "" {
		startDate, err := parseDate(start)
		if err != nil {
			return journal.Range{}, err
		}
		return journal.NewRange(startDate, endDate), nil
	}
	if period == "" {
		return journal.NewRange(time.Time{}, endDate), nil
	}
	if strings.EqualFold(period, "ytd") {
		return journal.YearToDate(endDate), nil
	}
	p, err := journal.ParsePeriod(period)
	if err != nil {
		return journal.Range{}, err
	}
	return p.Range(endDate), nil
}

// bookSymbols returns the distinct symbols traded in the book, sorted.
func bookSymbols(b *journal.Book) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, t := range b.Trades {
		if !seen[t.Symbol] {
			seen[t.Symbol] = true
			symbols = append(symbols, t.Symbol)
		}
	}
	slices.Sort(symbols)
	return symbols
}
