package renderer

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	journal "github.com/fanorama/stock-journal"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio dashboard: valuation, P&L split and
// headline metrics for the snapshot's range.
func SummaryMarkdown(p journal.Portfolio, snap *journal.PerformanceSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary: %s", p.Name))
	doc.PlainText(fmt.Sprintf("Total Value: %s", snap.Valuation.TotalValue))

	doc.H2("Valuation")
	ret := "n/a"
	if snap.Valuation.ReturnDefined {
		ret = snap.Valuation.Return.SignedString()
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Initial Capital", snap.Valuation.InitialCapital.String()},
			{"Cash", snap.Valuation.Cash.String()},
			{"Realized P&L", snap.Valuation.Realized.SignedString()},
			{"Unrealized P&L", snap.Valuation.Unrealized.SignedString()},
			{"Total Return", ret},
		},
	})

	doc.H2("Performance")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   metricRows(snap.Metrics),
	})

	appendDegradations(&buf, snap)
	return buf.String()
}

// appendDegradations lists the symbols the snapshot could not fully price or
// compute, so a degraded report is never mistaken for a complete one.
func appendDegradations(buf *bytes.Buffer, snap *journal.PerformanceSnapshot) {
	ConditionalBlock(buf, func(w io.Writer) bool {
		if len(snap.Unrealized.Missing) == 0 {
			return false
		}
		fmt.Fprint(w, "\n## Missing Prices\n\n")
		for _, symbol := range snap.Unrealized.Missing {
			fmt.Fprintf(w, "- %s: no current price, excluded from unrealized P&L\n", symbol)
		}
		return true
	})
	ConditionalBlock(buf, func(w io.Writer) bool {
		if len(snap.Failed) == 0 {
			return false
		}
		fmt.Fprint(w, "\n## Failed Symbols\n\n")
		for _, symbol := range sortedSymbols(snap.Failed) {
			fmt.Fprintf(w, "- %s: %v\n", symbol, snap.Failed[symbol])
		}
		return true
	})
}

func sortedSymbols(failed map[string]error) []string {
	symbols := make([]string, 0, len(failed))
	for s := range failed {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}
