package journal

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Book is one portfolio's complete record set: the portfolio itself, its
// trades and its journal entries. It is the unit the document store serves
// and the unit of local persistence; analytics always consume a whole book.
type Book struct {
	Portfolio Portfolio
	Trades    []Trade
	Entries   []Entry
}

// NewBook creates a book for a validated portfolio.
func NewBook(p Portfolio) (*Book, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Book{Portfolio: p}, nil
}

// AddTrade validates the trade against the book and appends it. The trade
// currency (price and fee) is forced to the portfolio's base currency: a
// book is single-currency by construction.
func (b *Book) AddTrade(t Trade) (Trade, error) {
	t.PortfolioID = b.Portfolio.ID
	t.Price = t.Price.WithCurrency(b.Portfolio.Currency)
	t.Fee = t.Fee.WithCurrency(b.Portfolio.Currency)
	if err := t.Validate(); err != nil {
		return t, err
	}
	if t.Side == Sell && b.Portfolio.Oversell == RejectOversell {
		open, err := b.OpenQuantity(t.Symbol, t.Time)
		if err != nil {
			return t, err
		}
		if t.Quantity.GreaterThan(open) {
			return t, &InsufficientLotsError{TradeID: t.ID, Symbol: t.Symbol, Sell: t.Quantity, Open: open}
		}
	}
	b.Trades = append(b.Trades, t)
	return t, nil
}

// AddEntry validates a journal entry and appends it. The referenced trade
// must exist in the book.
func (b *Book) AddEntry(e Entry) (Entry, error) {
	e.PortfolioID = b.Portfolio.ID
	if err := e.Validate(); err != nil {
		return e, err
	}
	if b.Trade(e.TradeID) == nil {
		return e, fmt.Errorf("journal entry references unknown trade %q", e.TradeID)
	}
	b.Entries = append(b.Entries, e)
	return e, nil
}

// Trade returns the trade with this exact ID, or nil.
func (b *Book) Trade(id string) *Trade {
	for i := range b.Trades {
		if b.Trades[i].ID == id {
			return &b.Trades[i]
		}
	}
	return nil
}

// FindTrade resolves a trade by unique ID prefix, convenient on the command
// line where typing a full UUID is unreasonable.
func (b *Book) FindTrade(prefix string) (*Trade, error) {
	var found *Trade
	for i := range b.Trades {
		if strings.HasPrefix(b.Trades[i].ID, prefix) {
			if found != nil {
				return nil, fmt.Errorf("trade prefix %q is ambiguous", prefix)
			}
			found = &b.Trades[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no trade matches %q", prefix)
	}
	return found, nil
}

// EntriesFor returns the journal entries attached to a trade, oldest first.
func (b *Book) EntriesFor(tradeID string) []Entry {
	var entries []Entry
	for _, e := range b.Entries {
		if e.TradeID == tradeID {
			entries = append(entries, e)
		}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return entries
}

// OpenQuantity computes the open (long) quantity of a symbol as of 'at',
// replaying the symbol's trades through the FIFO matcher.
func (b *Book) OpenQuantity(symbol string, at time.Time) (Quantity, error) {
	var trades []Trade
	for _, t := range b.Trades {
		if t.Symbol == symbol && !t.Time.After(at) {
			trades = append(trades, t)
		}
	}
	seq, err := NormalizeSymbol(trades)
	if err != nil {
		return Quantity{}, err
	}
	// Replay under AllowShort so that an already inconsistent history still
	// reports its net open quantity instead of failing here.
	_, open, err := MatchSymbol(seq, AllowShort)
	if err != nil {
		return Quantity{}, err
	}
	var total Quantity
	for _, l := range open {
		if l.Short {
			total = total.Sub(l.Quantity)
		} else {
			total = total.Add(l.Quantity)
		}
	}
	if total.IsNegative() {
		return Quantity{}, nil
	}
	return total, nil
}

// Snapshot runs the analytics pipeline over the book with the given current
// prices and range filter.
func (b *Book) Snapshot(prices map[string]Money, rng Range) (*PerformanceSnapshot, error) {
	return Compute(Input{
		Trades:         b.Trades,
		Prices:         prices,
		InitialCapital: b.Portfolio.InitialCapital,
		Range:          rng,
		Oversell:       b.Portfolio.Oversell,
	})
}

// Fmt returns a canonically ordered copy of the book: trades by execution
// time then ID, entries by creation time then ID. Encoding a formatted book
// is reproducible byte for byte.
func (b *Book) Fmt() *Book {
	out := &Book{
		Portfolio: b.Portfolio,
		Trades:    slices.Clone(b.Trades),
		Entries:   slices.Clone(b.Entries),
	}
	slices.SortStableFunc(out.Trades, compareTrades)
	slices.SortStableFunc(out.Entries, func(a, b Entry) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// RemoveTrade deletes a trade and its attached journal entries. Any
// previously computed matching for the symbol is invalid afterwards; the
// caller recomputes from the full book.
func (b *Book) RemoveTrade(id string) bool {
	n := len(b.Trades)
	b.Trades = slices.DeleteFunc(b.Trades, func(t Trade) bool { return t.ID == id })
	if len(b.Trades) == n {
		return false
	}
	b.Entries = slices.DeleteFunc(b.Entries, func(e Entry) bool { return e.TradeID == id })
	return true
}
