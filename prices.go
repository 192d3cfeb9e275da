package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// PriceSnapshot is the latest known price per symbol, as supplied by the
// caller's data layer (the `tj fetch` command or the live feed). The core
// only consumes it; symbols absent from the mapping are reported as
// unavailable downstream, never priced at zero.
type PriceSnapshot struct {
	Time   time.Time
	Prices map[string]Money
}

// MarshalJSON implements the json.Marshaler interface for PriceSnapshot.
func (s PriceSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("time", s.Time.UTC().Format(time.RFC3339))

	var prices jsonObjectWriter
	for _, symbol := range sortedKeys(s.Prices) {
		prices.Append(symbol, s.Prices[symbol])
	}
	body, err := prices.MarshalJSON()
	if err != nil {
		return nil, err
	}
	w.WriteString(`"prices":`)
	w.Write(body)
	w.WriteString(",")
	return w.MarshalJSON()
}

// EncodePrices writes a price snapshot as a single JSON document.
func EncodePrices(w io.Writer, s PriceSnapshot) error {
	body, err := s.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// DecodePrices reads a price snapshot, tagging every price with the given
// currency (prices are persisted as bare numbers, the currency belongs to
// the book).
func DecodePrices(r io.Reader, currency string) (PriceSnapshot, error) {
	var temp struct {
		Time   string                     `json:"time"`
		Prices map[string]decimal.Decimal `json:"prices"`
	}
	if err := json.NewDecoder(r).Decode(&temp); err != nil {
		return PriceSnapshot{}, fmt.Errorf("invalid price snapshot: %w", err)
	}
	s := PriceSnapshot{Prices: make(map[string]Money, len(temp.Prices))}
	if temp.Time != "" {
		var err error
		if s.Time, err = time.Parse(time.RFC3339, temp.Time); err != nil {
			return PriceSnapshot{}, fmt.Errorf("invalid price snapshot time: %w", err)
		}
	}
	for symbol, price := range temp.Prices {
		if !price.IsPositive() {
			return PriceSnapshot{}, fmt.Errorf("price for %s must be positive, got %v", symbol, price)
		}
		s.Prices[symbol] = M(price, currency)
	}
	return s, nil
}
