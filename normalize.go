package journal

import (
	"slices"
	"strings"
)

// groupBySymbol buckets trades by symbol without validating or ordering them.
func groupBySymbol(trades []Trade) map[string][]Trade {
	bySymbol := make(map[string][]Trade)
	for _, t := range trades {
		bySymbol[t.Symbol] = append(bySymbol[t.Symbol], t)
	}
	return bySymbol
}

// NormalizeSymbol validates and orders the trades of a single symbol: sorted
// by execution time ascending, equal timestamps ordered buys first and then
// by trade ID so that matching is reproducible. It returns a new slice; the
// input is never mutated.
//
// The first invariant violation aborts with an *InvalidTradeError.
func NormalizeSymbol(trades []Trade) ([]Trade, error) {
	for _, t := range trades {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	seq := slices.Clone(trades)
	slices.SortStableFunc(seq, compareTrades)
	return seq, nil
}

// Normalize converts raw trade records in arbitrary insertion order into a
// canonical chronological sequence per symbol. It fails on the first invalid
// trade; callers that want per-symbol failure scoping use NormalizeSymbol on
// each bucket instead.
func Normalize(trades []Trade) (map[string][]Trade, error) {
	bySymbol := groupBySymbol(trades)
	for symbol, seq := range bySymbol {
		normalized, err := NormalizeSymbol(seq)
		if err != nil {
			return nil, err
		}
		bySymbol[symbol] = normalized
	}
	return bySymbol, nil
}

// compareTrades orders by execution time; at equal timestamps buys come
// before sells, so a backdated sell can never jump ahead of the buy that
// funds it, and remaining ties break on trade ID.
func compareTrades(a, b Trade) int {
	switch {
	case a.Time.Before(b.Time):
		return -1
	case a.Time.After(b.Time):
		return 1
	case a.Side != b.Side:
		if a.Side == Buy {
			return -1
		}
		return 1
	default:
		return strings.Compare(a.ID, b.ID)
	}
}

// Symbols returns the symbols of a normalized set in deterministic order.
func Symbols(bySymbol map[string][]Trade) []string {
	return sortedKeys(bySymbol)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
