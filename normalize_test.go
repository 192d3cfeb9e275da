package journal

import (
	"errors"
	"testing"
)

func TestNormalize_ChronologicalPerSymbol(t *testing.T) {
	trades := []Trade{
		tr("c", "BBCA", Buy, 100, 9000, 0, 3),
		tr("a", "BBCA", Buy, 100, 8500, 0, 1),
		tr("x", "TLKM", Buy, 50, 3000, 0, 2),
		tr("b", "BBCA", Sell, 50, 9500, 0, 2),
	}

	bySymbol, err := Normalize(trades)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	got := bySymbol["BBCA"]
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("BBCA sequence has %d trades, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("BBCA[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
	if len(bySymbol["TLKM"]) != 1 {
		t.Errorf("TLKM sequence has %d trades, want 1", len(bySymbol["TLKM"]))
	}
}

func TestNormalize_TieBrokenByTradeID(t *testing.T) {
	// Same execution time: order must be by ID, and stable across runs.
	trades := []Trade{
		tr("b2", "BBCA", Buy, 10, 8500, 0, 1),
		tr("a1", "BBCA", Buy, 10, 8600, 0, 1),
	}
	for range 5 {
		bySymbol, err := Normalize(trades)
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		seq := bySymbol["BBCA"]
		if seq[0].ID != "a1" || seq[1].ID != "b2" {
			t.Fatalf("tie break order = %q,%q, want a1,b2", seq[0].ID, seq[1].ID)
		}
	}
}

func TestNormalize_BuyBeforeSellAtEqualTime(t *testing.T) {
	// Backdated trades share a midnight timestamp. The sell's ID sorts before
	// the buy's, but the buy must still match first.
	trades := []Trade{
		tr("aaa-sell", "BBCA", Sell, 100, 9500, 0, 1),
		tr("zzz-buy", "BBCA", Buy, 100, 8500, 0, 1),
	}
	bySymbol, err := Normalize(trades)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	seq := bySymbol["BBCA"]
	if seq[0].ID != "zzz-buy" || seq[1].ID != "aaa-sell" {
		t.Fatalf("order = %q,%q, want zzz-buy,aaa-sell", seq[0].ID, seq[1].ID)
	}
}

func TestNormalize_RejectsInvalidTrade(t *testing.T) {
	cases := []struct {
		name  string
		trade Trade
	}{
		{"zero quantity", tr("a", "BBCA", Buy, 0, 8500, 0, 1)},
		{"negative price", tr("a", "BBCA", Buy, 100, -8500, 0, 1)},
		{"negative fee", tr("a", "BBCA", Buy, 100, 8500, -10, 1)},
		{"lowercase symbol", tr("a", "bbca", Buy, 100, 8500, 0, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize([]Trade{tc.trade})
			var invalid *InvalidTradeError
			if !errors.As(err, &invalid) {
				t.Fatalf("Normalize() error = %v, want *InvalidTradeError", err)
			}
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	trades := []Trade{
		tr("b", "BBCA", Buy, 100, 9000, 0, 2),
		tr("a", "BBCA", Buy, 100, 8500, 0, 1),
	}
	if _, err := Normalize(trades); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if trades[0].ID != "b" || trades[1].ID != "a" {
		t.Errorf("input slice was reordered: %q, %q", trades[0].ID, trades[1].ID)
	}
}
