package journal

import (
	"slices"
	"strings"
	"time"
)

// ClosedPosition is the realized outcome of one closing trade: every matched
// fragment sharing that trade's ID, folded together.
type ClosedPosition struct {
	TradeID     string // the closing trade (sell, or covering buy for a short)
	Symbol      string
	Quantity    Quantity // total matched quantity
	CostBasis   Money    // at the weighted average buy cost
	Proceeds    Money
	PnL         Money
	ClosedAt    time.Time
	HoldingDays float64 // quantity-weighted holding period, in days
	Short       bool
}

// UnitCost is the weighted average cost basis per unit.
func (c ClosedPosition) UnitCost() Money { return c.CostBasis.Div(c.Quantity) }

// PercentGain is the realized P&L relative to the cost basis deployed.
func (c ClosedPosition) PercentGain() Percent {
	return Percent(100 * c.PnL.DivMoney(c.CostBasis).InexactFloat64())
}

// RealizedReport aggregates realized P&L over a range.
type RealizedReport struct {
	Range     Range
	Positions []ClosedPosition // ordered by closing time, ties by trade ID
	Total     Money
}

// Realized reduces matched fragments into per-trade and aggregate realized
// P&L. Only fragments whose closing time falls in 'rng' are considered. Pure
// reduction: inputs are never mutated.
func Realized(pairs []MatchedPair, rng Range) RealizedReport {
	byClosing := make(map[string]*ClosedPosition)
	weightedDays := make(map[string]float64)

	for _, p := range pairs {
		if !rng.Contains(p.ClosingTime()) {
			continue
		}
		id := p.ClosingID()
		pos, ok := byClosing[id]
		if !ok {
			pos = &ClosedPosition{
				TradeID:  id,
				Symbol:   p.Symbol,
				ClosedAt: p.ClosingTime(),
				Short:    p.Short,
			}
			byClosing[id] = pos
		}
		pos.Quantity = pos.Quantity.Add(p.Quantity)
		pos.CostBasis = pos.CostBasis.Add(p.CostBasis())
		pos.Proceeds = pos.Proceeds.Add(p.Proceeds())
		pos.PnL = pos.PnL.Add(p.PnL())
		weightedDays[id] += p.HoldingDays() * p.Quantity.InexactFloat64()
	}

	report := RealizedReport{Range: rng}
	for id, pos := range byClosing {
		if qty := pos.Quantity.InexactFloat64(); qty > 0 {
			pos.HoldingDays = weightedDays[id] / qty
		}
		report.Positions = append(report.Positions, *pos)
		report.Total = report.Total.Add(pos.PnL)
	}

	slices.SortFunc(report.Positions, func(a, b ClosedPosition) int {
		switch {
		case a.ClosedAt.Before(b.ClosedAt):
			return -1
		case a.ClosedAt.After(b.ClosedAt):
			return 1
		default:
			return strings.Compare(a.TradeID, b.TradeID)
		}
	})
	return report
}
