package journal

import (
	"slices"
	"testing"
)

func openLots(t *testing.T, policy OversellPolicy, trades ...Trade) map[string][]Lot {
	t.Helper()
	m := Match(groupBySymbol(trades), policy)
	if len(m.Failed) > 0 {
		t.Fatalf("matching failed: %v", m.Failed)
	}
	return m.Open
}

func TestUnrealized_PaperGain(t *testing.T) {
	open := openLots(t, RejectOversell,
		tr("b1", "BBCA", Buy, 100, 8500, 0, 1),
	)

	report := Unrealized(open, map[string]Money{"BBCA": idr(9000)})
	if len(report.Symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(report.Symbols))
	}
	s := report.Symbols[0]
	if !s.PnL.Equal(idr(50000)) {
		t.Errorf("PnL = %s, want 50000", s.PnL)
	}
	if !s.UnitCost.Equal(idr(8500)) {
		t.Errorf("UnitCost = %s, want 8500", s.UnitCost)
	}
	if !report.Total.Equal(idr(50000)) {
		t.Errorf("Total = %s, want 50000", report.Total)
	}
}

func TestUnrealized_MissingPriceListedNotZeroed(t *testing.T) {
	open := openLots(t, RejectOversell,
		tr("b1", "BBCA", Buy, 100, 8500, 0, 1),
		tr("b2", "XYZ", Buy, 50, 1000, 0, 1),
	)

	report := Unrealized(open, map[string]Money{"BBCA": idr(9000)})
	if !slices.Equal(report.Missing, []string{"XYZ"}) {
		t.Errorf("Missing = %v, want [XYZ]", report.Missing)
	}
	// The aggregate covers priced symbols only.
	if !report.Total.Equal(idr(50000)) {
		t.Errorf("Total = %s, want 50000", report.Total)
	}
	for _, s := range report.Symbols {
		if s.Symbol == "XYZ" {
			t.Error("unpriced symbol reported with a number")
		}
	}
}

func TestUnrealized_ShortGainsOnPriceDrop(t *testing.T) {
	open := openLots(t, AllowShort,
		tr("s1", "BBCA", Sell, 100, 9500, 0, 1),
	)

	report := Unrealized(open, map[string]Money{"BBCA": idr(9000)})
	if len(report.Symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(report.Symbols))
	}
	if !report.Symbols[0].PnL.Equal(idr(50000)) {
		t.Errorf("short PnL = %s, want 50000", report.Symbols[0].PnL)
	}
}

func TestUnrealized_WeightedAverageCost(t *testing.T) {
	open := openLots(t, RejectOversell,
		tr("b1", "BBCA", Buy, 100, 8000, 0, 1),
		tr("b2", "BBCA", Buy, 100, 9000, 0, 2),
	)

	report := Unrealized(open, map[string]Money{"BBCA": idr(9000)})
	if !report.Symbols[0].UnitCost.Equal(idr(8500)) {
		t.Errorf("UnitCost = %s, want 8500", report.Symbols[0].UnitCost)
	}
	if !report.Symbols[0].Quantity.Equal(Q(200)) {
		t.Errorf("Quantity = %s, want 200", report.Symbols[0].Quantity)
	}
}
