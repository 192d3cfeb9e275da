package journal

import (
	"fmt"
	"time"
)

// OversellPolicy decides what happens when a sell exceeds the open quantity
// for its symbol.
type OversellPolicy int

const (
	// RejectOversell fails the symbol with an *InsufficientLotsError. This is
	// the default: an oversell is treated as a data entry mistake.
	RejectOversell OversellPolicy = iota
	// AllowShort opens a short lot for the excess quantity; later buys cover
	// open shorts before opening new long lots.
	AllowShort
)

func (p OversellPolicy) String() string {
	switch p {
	case RejectOversell:
		return "reject"
	case AllowShort:
		return "short"
	default:
		return "unknown"
	}
}

// ParseOversellPolicy parses a string into an OversellPolicy.
func ParseOversellPolicy(s string) (OversellPolicy, error) {
	switch s {
	case "reject":
		return RejectOversell, nil
	case "short":
		return AllowShort, nil
	default:
		return 0, fmt.Errorf("unknown oversell policy: %q", s)
	}
}

// Lot is an open quantity of a trade not yet consumed by the opposite side.
// A long lot comes from a buy; a short lot (AllowShort policy only) comes
// from a sell in excess of the open quantity.
type Lot struct {
	TradeID  string
	Symbol   string
	Quantity Quantity // remaining quantity, always positive
	UnitCost Money    // cost basis per unit (fee pro-rated); unit proceeds for a short lot
	Time     time.Time
	Short    bool
}

// Cost is the total cost basis of the remaining quantity.
func (l Lot) Cost() Money { return l.UnitCost.Mul(l.Quantity) }

// MatchedPair is one FIFO consumption fragment: a quantity of an opening lot
// consumed by a closing trade. A single sell spanning several lots emits
// several fragments sharing the same SellID.
type MatchedPair struct {
	Symbol       string
	BuyID        string
	SellID       string
	Quantity     Quantity
	UnitCost     Money // buy leg cost basis per unit, fee pro-rated
	UnitProceeds Money // sell leg proceeds per unit, fee pro-rated
	BuyTime      time.Time
	SellTime     time.Time
	Short        bool // true when the sell leg opened the position
}

// CostBasis is the matched quantity at the buy leg's unit cost.
func (p MatchedPair) CostBasis() Money { return p.UnitCost.Mul(p.Quantity) }

// Proceeds is the matched quantity at the sell leg's unit proceeds.
func (p MatchedPair) Proceeds() Money { return p.UnitProceeds.Mul(p.Quantity) }

// PnL is the realized gain or loss of the fragment.
func (p MatchedPair) PnL() Money { return p.Proceeds().Sub(p.CostBasis()) }

// ClosingID identifies the trade that closed the position: the sell for a
// long, the covering buy for a short.
func (p MatchedPair) ClosingID() string {
	if p.Short {
		return p.BuyID
	}
	return p.SellID
}

// OpeningTime is when the position was opened.
func (p MatchedPair) OpeningTime() time.Time {
	if p.Short {
		return p.SellTime
	}
	return p.BuyTime
}

// ClosingTime is when the position was closed.
func (p MatchedPair) ClosingTime() time.Time {
	if p.Short {
		return p.BuyTime
	}
	return p.SellTime
}

// HoldingDays is the fragment's holding period, in days.
func (p MatchedPair) HoldingDays() float64 {
	return p.ClosingTime().Sub(p.OpeningTime()).Hours() / 24
}

// MatchSymbol simulates sequential execution of one symbol's normalized trade
// sequence, consuming open lots oldest first. It returns the matched
// fragments in execution order plus the remaining open lots.
//
// Under RejectOversell an excess sell fails with *InsufficientLotsError
// before anything of that sell is consumed: no partial match is committed.
// The function is deterministic and side-effect free.
func MatchSymbol(trades []Trade, policy OversellPolicy) ([]MatchedPair, []Lot, error) {
	var pairs []MatchedPair
	var queue []Lot // invariant: all-long or all-short, oldest first

	openQuantity := func() Quantity {
		var total Quantity
		for _, l := range queue {
			if !l.Short {
				total = total.Add(l.Quantity)
			}
		}
		return total
	}

	for _, t := range trades {
		remaining := t.Quantity

		if t.Side == Sell && policy == RejectOversell {
			if open := openQuantity(); remaining.GreaterThan(open) {
				return nil, nil, &InsufficientLotsError{
					TradeID: t.ID, Symbol: t.Symbol, Sell: remaining, Open: open,
				}
			}
		}

		// Consume opposite-side lots from the head of the queue.
		consumes := func(l Lot) bool {
			if t.Side == Buy {
				return l.Short
			}
			return !l.Short
		}
		for remaining.IsPositive() && len(queue) > 0 && consumes(queue[0]) {
			head := &queue[0]
			take := remaining.Min(head.Quantity)

			pair := MatchedPair{
				Symbol:   t.Symbol,
				Quantity: take,
				Short:    head.Short,
			}
			if t.Side == Sell {
				pair.BuyID = head.TradeID
				pair.SellID = t.ID
				pair.UnitCost = head.UnitCost
				pair.UnitProceeds = t.UnitProceeds()
				pair.BuyTime = head.Time
				pair.SellTime = t.Time
			} else {
				pair.BuyID = t.ID
				pair.SellID = head.TradeID
				pair.UnitCost = t.UnitCost()
				pair.UnitProceeds = head.UnitCost
				pair.BuyTime = t.Time
				pair.SellTime = head.Time
			}
			pairs = append(pairs, pair)

			head.Quantity = head.Quantity.Sub(take)
			remaining = remaining.Sub(take)
			if head.Quantity.IsZero() {
				queue = queue[1:]
			}
		}

		if !remaining.IsPositive() {
			continue
		}

		// The excess opens a new lot on the tail of the queue.
		lot := Lot{
			TradeID:  t.ID,
			Symbol:   t.Symbol,
			Quantity: remaining,
			Time:     t.Time,
		}
		if t.Side == Buy {
			lot.UnitCost = t.UnitCost()
		} else {
			// Only reachable under AllowShort.
			lot.UnitCost = t.UnitProceeds()
			lot.Short = true
		}
		queue = append(queue, lot)
	}

	return pairs, queue, nil
}

// Matching is the result of FIFO matching over several symbols.
type Matching struct {
	Pairs  []MatchedPair    // realized fragments, per-symbol execution order
	Open   map[string][]Lot // remaining open lots per symbol
	Failed map[string]error // symbols whose matching aborted (hard errors)
}

// OpenCost sums the cost basis of all open long lots. Short lots do not
// deploy cash and are excluded.
func (m *Matching) OpenCost() Money {
	var total Money
	for _, symbol := range sortedKeys(m.Open) {
		for _, l := range m.Open[symbol] {
			if !l.Short {
				total = total.Add(l.Cost())
			}
		}
	}
	return total
}

// Match normalizes and matches every symbol bucket independently. A hard
// error (invalid trade, insufficient lots) aborts only the affected symbol
// and is recorded in Failed; the other symbols' results are unaffected.
func Match(bySymbol map[string][]Trade, policy OversellPolicy) *Matching {
	m := &Matching{
		Open:   make(map[string][]Lot),
		Failed: make(map[string]error),
	}
	for _, symbol := range Symbols(bySymbol) {
		seq, err := NormalizeSymbol(bySymbol[symbol])
		if err != nil {
			m.Failed[symbol] = err
			continue
		}
		pairs, open, err := MatchSymbol(seq, policy)
		if err != nil {
			m.Failed[symbol] = err
			continue
		}
		m.Pairs = append(m.Pairs, pairs...)
		if len(open) > 0 {
			m.Open[symbol] = open
		}
	}
	return m
}
