package renderer

import (
	"fmt"
	"strings"

	journal "github.com/fanorama/stock-journal"
)

// undefined is rendered for any metric whose companion flag says the value
// does not exist for this set of closed positions.
const undefined = "n/a"

// MetricsMarkdown renders the performance metrics as a markdown table.
func MetricsMarkdown(m journal.Metrics, rng journal.Range) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Performance Metrics %s\n\n", rangeLabel(rng))

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, row := range metricRows(m) {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
	}
	return b.String()
}

func metricRows(m journal.Metrics) [][]string {
	winRate, avgGain, avgLoss, holding := undefined, undefined, undefined, undefined
	if m.WinRateDefined {
		winRate = m.WinRate.String()
	}
	if m.AverageGainDefined {
		avgGain = m.AverageGain.SignedString()
	}
	if m.AverageLossDefined {
		avgLoss = m.AverageLoss.SignedString()
	}
	if m.AvgHoldingDaysDefined {
		holding = fmt.Sprintf("%.1f days", m.AvgHoldingDays)
	}

	profitFactor := undefined
	switch {
	case m.ProfitFactorUnbounded:
		profitFactor = "∞"
	case m.ProfitFactorDefined:
		profitFactor = fmt.Sprintf("%.2f", m.ProfitFactor)
	}

	return [][]string{
		{"Closed Positions", fmt.Sprintf("%d", m.Closed)},
		{"Wins / Losses", fmt.Sprintf("%d / %d", m.Wins, m.Losses)},
		{"Win Rate", winRate},
		{"Average Gain", avgGain},
		{"Average Loss", avgLoss},
		{"Profit Factor", profitFactor},
		{"Avg Holding Period", holding},
	}
}
