package journal

import (
	"errors"
	"fmt"
)

// Input is the complete snapshot of data the analytics pipeline consumes: a
// portfolio's trades, a possibly partial current-price mapping, the initial
// capital, and an optional date-range filter. The pipeline treats all of it
// as read-only.
type Input struct {
	Trades         []Trade
	Prices         map[string]Money
	InitialCapital Money
	Range          Range // scopes realized P&L and metrics; the zero Range means all time
	Oversell       OversellPolicy
}

// PerformanceSnapshot is the aggregate analytics output: realized and
// unrealized P&L, valuation, performance metrics, plus the intermediate
// matched fragments and open lots for a positions view. It is purely
// derived and recomputed per request; identical input yields byte-identical
// output.
type PerformanceSnapshot struct {
	Range      Range
	Realized   RealizedReport
	Unrealized UnrealizedReport
	Valuation  Valuation
	Metrics    Metrics
	Pairs      []MatchedPair
	Open       map[string][]Lot

	// Failed lists symbols whose computation aborted on a hard error
	// (invalid trade, insufficient lots). Other symbols are unaffected.
	Failed map[string]error
}

// Compute runs the full pipeline: normalize → match → {realized, unrealized}
// → valuation and metrics. It is a pure function of its input, stateless
// between invocations and safe to call concurrently for different
// portfolios.
//
// The returned error joins the hard per-symbol failures; it is nil when all
// symbols computed. The snapshot is returned in both cases so that callers
// can render the partial, degraded view (failed symbols listed in Failed,
// unpriced symbols in Unrealized.Missing).
func Compute(in Input) (*PerformanceSnapshot, error) {
	matching := Match(groupBySymbol(in.Trades), in.Oversell)

	realized := Realized(matching.Pairs, in.Range)
	unrealized := Unrealized(matching.Open, in.Prices)

	// Valuation always reflects the whole history: a range filter scopes the
	// realized report and the metrics, not the portfolio's total value.
	lifetime := realized
	if !in.Range.IsAllTime() {
		lifetime = Realized(matching.Pairs, AllTime())
	}

	snap := &PerformanceSnapshot{
		Range:      in.Range,
		Realized:   realized,
		Unrealized: unrealized,
		Valuation:  Valuate(in.InitialCapital, lifetime.Total, unrealized.Total, matching.OpenCost()),
		Metrics:    Measure(realized.Positions),
		Pairs:      matching.Pairs,
		Open:       matching.Open,
		Failed:     matching.Failed,
	}

	if len(matching.Failed) == 0 {
		return snap, nil
	}
	errs := make([]error, 0, len(matching.Failed))
	for _, symbol := range sortedKeys(matching.Failed) {
		errs = append(errs, fmt.Errorf("%s: %w", symbol, matching.Failed[symbol]))
	}
	return snap, errors.Join(errs...)
}
