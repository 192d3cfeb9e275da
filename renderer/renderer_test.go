package renderer

import (
	"strings"
	"testing"
	"time"

	journal "github.com/fanorama/stock-journal"
)

func testBook(t *testing.T) *journal.Book {
	t.Helper()
	p := journal.NewPortfolio("Growth", "IDR", "IDX", journal.M(10000000, "IDR"))
	b, err := journal.NewBook(p)
	if err != nil {
		t.Fatalf("NewBook() error = %v", err)
	}
	day := func(d int) time.Time { return time.Date(2025, time.March, d, 9, 0, 0, 0, time.UTC) }
	if _, err := b.AddTrade(journal.NewBuy(p.ID, "BBCA", journal.Q(100), journal.M(8500, "IDR"), journal.M(0, "IDR"), day(1))); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddTrade(journal.NewBuy(p.ID, "XYZ", journal.Q(50), journal.M(1000, "IDR"), journal.M(0, "IDR"), day(2))); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddTrade(journal.NewSell(p.ID, "BBCA", journal.Q(40), journal.M(9000, "IDR"), journal.M(0, "IDR"), day(5))); err != nil {
		t.Fatal(err)
	}
	return b
}

func testSnapshot(t *testing.T, b *journal.Book) *journal.PerformanceSnapshot {
	t.Helper()
	snap, err := b.Snapshot(map[string]journal.Money{"BBCA": journal.M(9100, "IDR")}, journal.AllTime())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	return snap
}

func TestSummaryMarkdown(t *testing.T) {
	b := testBook(t)
	out := SummaryMarkdown(b.Portfolio, testSnapshot(t, b))

	for _, want := range []string{
		"# Portfolio Summary: Growth",
		"Total Value:",
		"## Valuation",
		"Realized P&L",
		"## Performance",
		"Win Rate",
		"## Missing Prices",
		"- XYZ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryMarkdown_NoDegradationSections(t *testing.T) {
	b := testBook(t)
	snap, err := b.Snapshot(map[string]journal.Money{
		"BBCA": journal.M(9100, "IDR"),
		"XYZ":  journal.M(1100, "IDR"),
	}, journal.AllTime())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	out := SummaryMarkdown(b.Portfolio, snap)
	if strings.Contains(out, "Missing Prices") || strings.Contains(out, "Failed Symbols") {
		t.Errorf("fully priced summary renders degradation sections:\n%s", out)
	}
}

func TestPositionsMarkdown(t *testing.T) {
	b := testBook(t)
	out := PositionsMarkdown(testSnapshot(t, b))

	for _, want := range []string{
		"# Open Positions",
		"| BBCA | 60 |",
		"## Unpriced",
		"- XYZ",
		"**Total**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("positions view is missing %q:\n%s", want, out)
		}
	}
}

func TestPositionsMarkdown_Empty(t *testing.T) {
	p := journal.NewPortfolio("Empty", "IDR", "", journal.M(0, "IDR"))
	b, err := journal.NewBook(p)
	if err != nil {
		t.Fatal(err)
	}
	out := PositionsMarkdown(testSnapshot(t, b))
	if !strings.Contains(out, "No open positions.") {
		t.Errorf("empty book positions view:\n%s", out)
	}
}

func TestRealizedMarkdown(t *testing.T) {
	b := testBook(t)
	snap := testSnapshot(t, b)
	out := RealizedMarkdown(snap.Realized)

	for _, want := range []string{
		"# Realized P&L (all time)",
		"| 2025-03-05 | BBCA | 40 |",
		"**Total**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("realized view is missing %q:\n%s", want, out)
		}
	}
}

func TestMetricsMarkdown_UndefinedValues(t *testing.T) {
	out := MetricsMarkdown(journal.Metrics{}, journal.AllTime())
	if !strings.Contains(out, "| Win Rate | n/a |") {
		t.Errorf("metrics over no positions should render n/a:\n%s", out)
	}

	unbounded := journal.Measure([]journal.ClosedPosition{{PnL: journal.M(500, "IDR")}})
	out = MetricsMarkdown(unbounded, journal.AllTime())
	if !strings.Contains(out, "| Profit Factor | ∞ |") {
		t.Errorf("metrics without losses should render an unbounded profit factor:\n%s", out)
	}
}

func TestRangeLabel(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		rng  journal.Range
		want string
	}{
		{journal.AllTime(), "(all time)"},
		{journal.NewRange(time.Time{}, end), "up to 2025-03-15"},
		{journal.NewRange(start, end), "from 2025-03-01 to 2025-03-15"},
	}
	for _, tc := range cases {
		if got := rangeLabel(tc.rng); got != tc.want {
			t.Errorf("rangeLabel(%+v) = %q, want %q", tc.rng, got, tc.want)
		}
	}

	// A heading over an open-start range never shows the zero date.
	out := MetricsMarkdown(journal.Metrics{}, journal.NewRange(time.Time{}, end))
	if !strings.Contains(out, "# Performance Metrics up to 2025-03-15") || strings.Contains(out, "0001-01-01") {
		t.Errorf("open-start metrics heading:\n%s", out)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	b := testBook(t)
	trade := b.Trades[0]
	if _, err := b.AddEntry(journal.NewEntry(b.Portfolio.ID, trade.ID, "accumulating on weakness", journal.Bullish)); err != nil {
		t.Fatal(err)
	}

	out := TransactionsMarkdown(b)
	for _, want := range []string{
		"# Transactions",
		"| BUY | BBCA | 100 |",
		"[bullish] accumulating on weakness",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("transactions view is missing %q:\n%s", want, out)
		}
	}
}

func TestTransaction(t *testing.T) {
	b := testBook(t)
	line := Transaction(b.Trades[0])
	if !strings.Contains(line, "Bought 100 of BBCA") {
		t.Errorf("Transaction() = %q", line)
	}
}
