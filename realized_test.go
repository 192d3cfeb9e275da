package journal

import (
	"testing"
	"time"
)

func matchTrades(t *testing.T, trades ...Trade) []MatchedPair {
	t.Helper()
	seq, err := NormalizeSymbol(trades)
	if err != nil {
		t.Fatalf("NormalizeSymbol() error = %v", err)
	}
	pairs, _, err := MatchSymbol(seq, RejectOversell)
	if err != nil {
		t.Fatalf("MatchSymbol() error = %v", err)
	}
	return pairs
}

func TestRealized_SimpleGain(t *testing.T) {
	pairs := matchTrades(t,
		tr("b1", "BBCA", Buy, 100, 8500, 0, 1),
		tr("s1", "BBCA", Sell, 100, 9000, 0, 10),
	)

	report := Realized(pairs, AllTime())
	if len(report.Positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(report.Positions))
	}
	pos := report.Positions[0]
	if !pos.PnL.Equal(idr(500000)) {
		t.Errorf("PnL = %s, want 500000", pos.PnL)
	}
	if !report.Total.Equal(idr(500000)) {
		t.Errorf("Total = %s, want 500000", report.Total)
	}
	if pos.HoldingDays != 9 {
		t.Errorf("HoldingDays = %v, want 9", pos.HoldingDays)
	}
}

func TestRealized_FoldsFragmentsByClosingTrade(t *testing.T) {
	// One sell spanning two lots is a single closed position.
	pairs := matchTrades(t,
		tr("b1", "BBCA", Buy, 100, 8500, 0, 1),
		tr("b2", "BBCA", Buy, 100, 9000, 0, 5),
		tr("s1", "BBCA", Sell, 150, 9500, 0, 9),
	)

	report := Realized(pairs, AllTime())
	if len(report.Positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(report.Positions))
	}
	pos := report.Positions[0]
	if pos.TradeID != "s1" || !pos.Quantity.Equal(Q(150)) {
		t.Errorf("position = %s x %s, want s1 x 150", pos.TradeID, pos.Quantity)
	}
	// 100 @ 8500 + 50 @ 9000 = 1,300,000 against proceeds of 1,425,000.
	if !pos.CostBasis.Equal(idr(1300000)) {
		t.Errorf("CostBasis = %s, want 1300000", pos.CostBasis)
	}
	if !pos.PnL.Equal(idr(125000)) {
		t.Errorf("PnL = %s, want 125000", pos.PnL)
	}
	// Holding days weighted by quantity: (100*8 + 50*4) / 150.
	want := (100*8.0 + 50*4.0) / 150
	if pos.HoldingDays != want {
		t.Errorf("HoldingDays = %v, want %v", pos.HoldingDays, want)
	}
}

func TestRealized_RangeScopesByClosingTime(t *testing.T) {
	pairs := matchTrades(t,
		tr("b1", "BBCA", Buy, 200, 8500, 0, 1),
		tr("s1", "BBCA", Sell, 100, 9000, 0, 5),
		tr("s2", "BBCA", Sell, 100, 9500, 0, 20),
	)

	rng := NewRange(
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	report := Realized(pairs, rng)
	if len(report.Positions) != 1 || report.Positions[0].TradeID != "s2" {
		t.Fatalf("got positions %+v, want only s2", report.Positions)
	}
	if !report.Total.Equal(idr(100000)) {
		t.Errorf("Total = %s, want 100000", report.Total)
	}
}

func TestClosedPosition_PercentGain(t *testing.T) {
	pos := ClosedPosition{
		CostBasis: idr(850000),
		PnL:       idr(50000),
	}
	if got := pos.PercentGain(); !got.Equal(Percent(50000.0 / 850000 * 100)) {
		t.Errorf("PercentGain = %v", got)
	}
}
