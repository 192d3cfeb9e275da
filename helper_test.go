package journal

import (
	"time"
)

// testCurrency is the base currency used across tests. Prices like 8500 per
// share read naturally in it.
const testCurrency = "IDR"

// tr builds a trade with a deterministic identifier and an execution time on
// the given day of March 2025.
func tr(id, symbol string, side Side, qty int64, price, fee float64, day int) Trade {
	return Trade{
		ID:       id,
		Symbol:   symbol,
		Side:     side,
		Quantity: Q(qty),
		Price:    M(price, testCurrency),
		Fee:      M(fee, testCurrency),
		Time:     time.Date(2025, time.March, day, 9, 0, 0, 0, time.UTC),
	}
}

func idr(v float64) Money { return M(v, testCurrency) }
