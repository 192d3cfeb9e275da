package journal

// SymbolUnrealized is the paper gain or loss of one symbol's open position
// against a caller-supplied current price.
type SymbolUnrealized struct {
	Symbol   string
	Quantity Quantity // total open quantity (net of shorts)
	UnitCost Money    // weighted average open cost basis per unit
	Price    Money    // current price supplied by the caller
	PnL      Money    // (price − unit cost) × quantity; sign flipped for shorts
}

// UnrealizedReport is the unrealized P&L over open lots, given a snapshot of
// current prices. Symbols absent from the price mapping are listed in Missing
// and excluded from the aggregate; they are never silently counted as zero.
type UnrealizedReport struct {
	Symbols []SymbolUnrealized // priced symbols, sorted
	Missing []string           // open symbols with no current price, sorted
	Total   Money              // aggregate over priced symbols only
}

// Unrealized combines remaining open lots with a current-price mapping. It
// holds no state between calls: the caller re-invokes it with a fresh price
// snapshot whenever one is available.
func Unrealized(open map[string][]Lot, prices map[string]Money) UnrealizedReport {
	var report UnrealizedReport

	for _, symbol := range sortedKeys(open) {
		lots := open[symbol]
		if len(lots) == 0 {
			continue
		}

		var quantity Quantity
		var cost Money
		short := lots[0].Short
		for _, l := range lots {
			quantity = quantity.Add(l.Quantity)
			cost = cost.Add(l.Cost())
		}

		price, ok := prices[symbol]
		if !ok {
			report.Missing = append(report.Missing, symbol)
			continue
		}

		pnl := price.Mul(quantity).Sub(cost)
		if short {
			// A short gains when the price drops below the entry proceeds.
			pnl = cost.Sub(price.Mul(quantity))
		}

		report.Symbols = append(report.Symbols, SymbolUnrealized{
			Symbol:   symbol,
			Quantity: quantity,
			UnitCost: cost.Div(quantity),
			Price:    price,
			PnL:      pnl,
		})
		report.Total = report.Total.Add(pnl)
	}

	return report
}
