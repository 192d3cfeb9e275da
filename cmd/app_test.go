package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	journal "github.com/fanorama/stock-journal"
	"github.com/google/subcommands"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2025-03-05")
	if err != nil {
		t.Fatalf("parseDate() error = %v", err)
	}
	want := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate() = %v, want %v", got, want)
	}

	if got, err := parseDate(""); err != nil || !got.IsZero() {
		t.Errorf("parseDate(empty) = %v, %v, want zero time", got, err)
	}
	if got, err := parseDate("today"); err != nil || got.IsZero() {
		t.Errorf("parseDate(today) = %v, %v", got, err)
	}
	if _, err := parseDate("05/03/2025"); err == nil {
		t.Error("parseDate() accepted a non ISO date")
	}
}

func TestParseRange(t *testing.T) {
	rng, err := parseRange("", "", "")
	if err != nil || !rng.IsAllTime() {
		t.Errorf("parseRange(no flags) = %+v, %v, want all time", rng, err)
	}

	rng, err = parseRange("month", "", "2025-03-15")
	if err != nil {
		t.Fatalf("parseRange(month) error = %v", err)
	}
	if !rng.From.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("month range starts %v, want March 1", rng.From)
	}

	rng, err = parseRange("ytd", "", "2025-03-15")
	if err != nil {
		t.Fatalf("parseRange(ytd) error = %v", err)
	}
	if !rng.From.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ytd range starts %v, want January 1", rng.From)
	}

	// An explicit start date overrides the period.
	rng, err = parseRange("month", "2025-02-01", "2025-03-15")
	if err != nil {
		t.Fatalf("parseRange(start) error = %v", err)
	}
	if !rng.From.Equal(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("custom range starts %v, want February 1", rng.From)
	}

	if _, err := parseRange("fortnight", "", ""); err == nil {
		t.Error("parseRange() accepted an unknown period")
	}
}

func TestBuyUppercasesSymbol(t *testing.T) {
	t.Setenv(EnvBookFile, filepath.Join(t.TempDir(), "journal.jsonl"))
	p := journal.NewPortfolio("Test", "IDR", "", journal.M(1000000, "IDR"))
	b, err := journal.NewBook(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := EncodeBook(b); err != nil {
		t.Fatalf("EncodeBook() error = %v", err)
	}

	c := &buyCmd{}
	c.symbol = "bbca"
	c.quantity = 10
	c.price = 8500
	c.date = "2025-03-03"
	if got := c.Execute(context.Background(), nil); got != subcommands.ExitSuccess {
		t.Fatalf("buy exited %v", got)
	}

	b, err = DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	if len(b.Trades) != 1 || b.Trades[0].Symbol != "BBCA" {
		t.Errorf("recorded trades = %+v, want one BBCA trade", b.Trades)
	}
}

func TestBookSymbols(t *testing.T) {
	p := journal.NewPortfolio("Test", "IDR", "", journal.M(0, "IDR"))
	b, err := journal.NewBook(p)
	if err != nil {
		t.Fatal(err)
	}
	day := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	for _, symbol := range []string{"TLKM", "BBCA", "TLKM"} {
		if _, err := b.AddTrade(journal.NewBuy(p.ID, symbol, journal.Q(10), journal.M(100, "IDR"), journal.M(0, "IDR"), day)); err != nil {
			t.Fatal(err)
		}
	}

	got := bookSymbols(b)
	if len(got) != 2 || got[0] != "BBCA" || got[1] != "TLKM" {
		t.Errorf("bookSymbols() = %v, want [BBCA TLKM]", got)
	}
}
