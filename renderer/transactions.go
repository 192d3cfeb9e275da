package renderer

import (
	"fmt"
	"strings"

	journal "github.com/fanorama/stock-journal"
)

// Transaction renders a trade to a one-line string.
func Transaction(t journal.Trade) string {
	switch t.Side {
	case journal.Buy:
		return fmt.Sprintf("Bought %s of %s at %s", t.Quantity, t.Symbol, t.Price)
	case journal.Sell:
		return fmt.Sprintf("Sold %s of %s at %s", t.Quantity, t.Symbol, t.Price)
	default:
		return fmt.Sprintf("%s %s of %s", t.Side, t.Quantity, t.Symbol)
	}
}

// TransactionsMarkdown renders the trade log in Fmt order, with the journal
// reflections attached to each trade.
func TransactionsMarkdown(b *journal.Book) string {
	var w strings.Builder
	fmtd := b.Fmt()

	fmt.Fprint(&w, "# Transactions\n\n")
	if len(fmtd.Trades) == 0 {
		fmt.Fprint(&w, "No trades recorded.\n")
		return w.String()
	}

	fmt.Fprintln(&w, "| Time | ID | Side | Symbol | Quantity | Price | Fee | Note |")
	fmt.Fprintln(&w, "|:---|:---|:---|:---|---:|---:|---:|:---|")
	for _, t := range fmtd.Trades {
		fmt.Fprintf(&w, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			t.Time.Format("2006-01-02 15:04"), shortID(t.ID), t.Side, t.Symbol,
			t.Quantity, t.Price, t.Fee, t.Note)
	}

	for _, t := range fmtd.Trades {
		entries := b.EntriesFor(t.ID)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&w, "\n## %s (%s)\n\n", Transaction(t), shortID(t.ID))
		for _, e := range entries {
			if e.Sentiment != "" {
				fmt.Fprintf(&w, "- [%s] %s\n", e.Sentiment, e.Text)
			} else {
				fmt.Fprintf(&w, "- %s\n", e.Text)
			}
		}
	}
	return w.String()
}

// shortID keeps trade identifiers readable in tables; the CLI resolves them
// back by prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
