package journal

import "fmt"

// InvalidTradeError reports a trade that violates a model invariant
// (non-positive quantity or price, negative fee). It is a hard error: the
// computation for the trade's symbol is aborted rather than the record being
// silently skipped.
type InvalidTradeError struct {
	TradeID string
	Symbol  string
	Reason  string
}

func (e *InvalidTradeError) Error() string {
	return fmt.Sprintf("invalid trade %s (%s): %s", e.TradeID, e.Symbol, e.Reason)
}

// InsufficientLotsError reports a sell that exceeds the open quantity for its
// symbol under the RejectOversell policy. Matching for that symbol halts at
// the point of failure; other symbols are unaffected.
type InsufficientLotsError struct {
	TradeID string
	Symbol  string
	Sell    Quantity
	Open    Quantity
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("cannot sell %s of %s on trade %s: only %s open",
		e.Sell, e.Symbol, e.TradeID, e.Open)
}
