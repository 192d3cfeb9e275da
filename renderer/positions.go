package renderer

import (
	"fmt"
	"io"
	"strings"

	journal "github.com/fanorama/stock-journal"
)

// PositionsMarkdown renders open positions with their current unrealized P&L.
// Symbols without a price appear in a separate section instead of a row with
// a made-up number.
func PositionsMarkdown(snap *journal.PerformanceSnapshot) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Open Positions\n\n")

	if len(snap.Unrealized.Symbols) == 0 && len(snap.Unrealized.Missing) == 0 {
		fmt.Fprint(&b, "No open positions.\n")
		return b.String()
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(snap.Unrealized.Symbols) == 0 {
			return false
		}
		fmt.Fprintln(w, "| Symbol | Quantity | Avg Cost | Price | Unrealized |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|---:|")
		for _, s := range snap.Unrealized.Symbols {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				s.Symbol, s.Quantity, s.UnitCost, s.Price, s.PnL.SignedString())
		}
		fmt.Fprintf(w, "| **Total** | | | | **%s** |\n", snap.Unrealized.Total.SignedString())
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(snap.Unrealized.Missing) == 0 {
			return false
		}
		fmt.Fprint(w, "\n## Unpriced\n\n")
		for _, symbol := range snap.Unrealized.Missing {
			fmt.Fprintf(w, "- %s: open position held, current price unavailable\n", symbol)
		}
		return true
	})

	return b.String()
}

// RealizedMarkdown renders the closed positions of the report's range.
func RealizedMarkdown(report journal.RealizedReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized P&L %s\n\n", rangeLabel(report.Range))

	if len(report.Positions) == 0 {
		fmt.Fprint(&b, "No closed positions.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Closed | Symbol | Quantity | Cost Basis | Proceeds | P&L | Gain |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	for _, pos := range report.Positions {
		symbol := pos.Symbol
		if pos.Short {
			symbol += " (short)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			pos.ClosedAt.Format("2006-01-02"), symbol, pos.Quantity,
			pos.CostBasis, pos.Proceeds, pos.PnL.SignedString(), pos.PercentGain().SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | | | | | **%s** | |\n", report.Total.SignedString())
	return b.String()
}
