package journal

// Valuation combines realized P&L, unrealized P&L and initial capital into
// the portfolio's total value and total return.
type Valuation struct {
	InitialCapital Money
	Realized       Money
	Unrealized     Money
	Cash           Money // initial capital + realized − cash deployed in open positions
	TotalValue     Money // initial capital + realized + unrealized

	// Return is the total return percentage. It is undefined when the
	// initial capital is zero; ReturnDefined is false in that case and
	// Return must not be used.
	Return        Percent
	ReturnDefined bool
}

// Valuate computes the portfolio valuation. Cash and positions are already
// netted through the P&L terms, so the principal is never double counted.
// openCost is the cost basis currently deployed in open long positions.
//
// With a zero initial capital the return percentage is reported as undefined
// rather than a division result.
func Valuate(initial, realized, unrealized, openCost Money) Valuation {
	v := Valuation{
		InitialCapital: initial,
		Realized:       realized,
		Unrealized:     unrealized,
		Cash:           initial.Add(realized).Sub(openCost),
		TotalValue:     initial.Add(realized).Add(unrealized),
	}
	if initial.IsZero() {
		return v
	}
	v.Return = Percent(100 * v.TotalValue.Sub(initial).DivMoney(initial).InexactFloat64())
	v.ReturnDefined = true
	return v
}
