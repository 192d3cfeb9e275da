package journal

// Metrics are the trading performance indicators derived from the set of
// closed positions, recomputed fresh on every query.
//
// Every ratio that can be undefined carries an explicit companion flag; a
// false flag means the value holds its zero value and must not be displayed
// as a number. This keeps NaN and Inf out of the arithmetic entirely.
type Metrics struct {
	Closed int // total closed positions, zero-P&L ones included
	Wins   int // closed positions with P&L > 0
	Losses int // closed positions with P&L < 0

	// WinRate counts a zero-P&L position in the denominator but not the
	// numerator. Undefined with no closed positions.
	WinRate        Percent
	WinRateDefined bool

	AverageGain        Money // mean of positive P&L values
	AverageGainDefined bool  // false with zero winning positions

	AverageLoss        Money // mean of negative P&L values, kept signed negative
	AverageLossDefined bool  // false with zero losing positions

	GrossGain Money // sum of positive P&L
	GrossLoss Money // sum of negative P&L, signed negative

	// ProfitFactor is gross gain over the magnitude of gross loss. With no
	// losing positions it is reported as unbounded, never as an Inf value.
	ProfitFactor          float64
	ProfitFactorDefined   bool
	ProfitFactorUnbounded bool

	AvgHoldingDays        float64 // mean holding period of closed positions, in days
	AvgHoldingDaysDefined bool
}

// Measure derives the performance metrics from closed positions. Date-range
// scoping happens upstream, in Realized.
func Measure(positions []ClosedPosition) Metrics {
	var m Metrics
	var holdingDays float64

	for _, pos := range positions {
		m.Closed++
		holdingDays += pos.HoldingDays
		switch {
		case pos.PnL.IsPositive():
			m.Wins++
			m.GrossGain = m.GrossGain.Add(pos.PnL)
		case pos.PnL.IsNegative():
			m.Losses++
			m.GrossLoss = m.GrossLoss.Add(pos.PnL)
		}
		// a zero P&L position counts toward Closed only
	}

	if m.Closed > 0 {
		m.WinRate = Percent(100 * float64(m.Wins) / float64(m.Closed))
		m.WinRateDefined = true
		m.AvgHoldingDays = holdingDays / float64(m.Closed)
		m.AvgHoldingDaysDefined = true
	}
	if m.Wins > 0 {
		m.AverageGain = m.GrossGain.Div(Q(m.Wins))
		m.AverageGainDefined = true
	}
	if m.Losses > 0 {
		m.AverageLoss = m.GrossLoss.Div(Q(m.Losses))
		m.AverageLossDefined = true
		m.ProfitFactor = m.GrossGain.DivMoney(m.GrossLoss.Abs()).InexactFloat64()
		m.ProfitFactorDefined = true
	} else if m.Wins > 0 {
		m.ProfitFactorUnbounded = true
	}
	return m
}
