package journal

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Side identifies the direction of a trade execution.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	default:
		return "", fmt.Errorf("unknown trade side %q", s)
	}
}

// MaxNoteLen bounds the free-text note attached to a trade.
const MaxNoteLen = 500

var tickerRe = regexp.MustCompile(`^[A-Z0-9.]{1,12}$`)

// Trade is an immutable record of one buy or sell execution. A trade may
// still be edited or deleted by the user after creation; any cached matching
// for its symbol is invalid after such a mutation and must be recomputed.
type Trade struct {
	ID          string
	PortfolioID string
	Symbol      string
	Side        Side
	Quantity    Quantity  // number of units, positive
	Price       Money     // price per unit, positive
	Fee         Money     // total execution fee, non-negative
	Time        time.Time // execution timestamp
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBuy records a buy execution in the given portfolio.
func NewBuy(portfolioID, symbol string, quantity Quantity, price, fee Money, at time.Time) Trade {
	return newTrade(portfolioID, symbol, Buy, quantity, price, fee, at)
}

// NewSell records a sell execution in the given portfolio.
func NewSell(portfolioID, symbol string, quantity Quantity, price, fee Money, at time.Time) Trade {
	return newTrade(portfolioID, symbol, Sell, quantity, price, fee, at)
}

func newTrade(portfolioID, symbol string, side Side, quantity Quantity, price, fee Money, at time.Time) Trade {
	now := time.Now().UTC()
	return Trade{
		ID:          uuid.NewString(),
		PortfolioID: portfolioID,
		Symbol:      symbol,
		Side:        side,
		Quantity:    quantity,
		Price:       price,
		Fee:         fee,
		Time:        at,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate re-checks the numeric invariants the storage layer is supposed to
// enforce. The core is usable as a standalone library, so it does not trust
// upstream validation for quantity, price and fee.
func (t Trade) Validate() error {
	fail := func(reason string) error {
		return &InvalidTradeError{TradeID: t.ID, Symbol: t.Symbol, Reason: reason}
	}
	if !tickerRe.MatchString(t.Symbol) {
		return fail(fmt.Sprintf("symbol %q is not a short uppercase ticker", t.Symbol))
	}
	if t.Side != Buy && t.Side != Sell {
		return fail(fmt.Sprintf("unknown side %q", t.Side))
	}
	if !t.Quantity.IsPositive() {
		return fail(fmt.Sprintf("quantity must be positive, got %s", t.Quantity))
	}
	if !t.Price.IsPositive() {
		return fail(fmt.Sprintf("price must be positive, got %s", t.Price))
	}
	if t.Fee.IsNegative() {
		return fail(fmt.Sprintf("fee must not be negative, got %s", t.Fee))
	}
	if t.Time.IsZero() {
		return fail("execution time is missing")
	}
	if len(t.Note) > MaxNoteLen {
		return fail(fmt.Sprintf("note exceeds %d characters", MaxNoteLen))
	}
	return nil
}

// Gross is quantity × price, before fees.
func (t Trade) Gross() Money { return t.Price.Mul(t.Quantity) }

// UnitCost is the per-unit cost basis of a buy: price plus the pro-rated fee.
func (t Trade) UnitCost() Money { return t.Price.Add(t.Fee.Div(t.Quantity)) }

// UnitProceeds is the per-unit proceeds of a sell: price minus the pro-rated fee.
func (t Trade) UnitProceeds() Money { return t.Price.Sub(t.Fee.Div(t.Quantity)) }

func (t Trade) Equal(o Trade) bool {
	return t.ID == o.ID && t.PortfolioID == o.PortfolioID && t.Symbol == o.Symbol &&
		t.Side == o.Side && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price) &&
		t.Fee.Equal(o.Fee) && t.Time.Equal(o.Time) && t.Note == o.Note
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Optional("portfolio", t.PortfolioID)
	w.Append("symbol", t.Symbol)
	w.Append("side", t.Side)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	if !t.Fee.IsZero() {
		w.Append("fee", t.Fee)
	}
	w.Append("time", t.Time.UTC().Format(time.RFC3339))
	w.Optional("note", t.Note)
	if !t.CreatedAt.IsZero() {
		w.Append("created", t.CreatedAt.UTC().Format(time.RFC3339))
	}
	if !t.UpdatedAt.IsZero() && !t.UpdatedAt.Equal(t.CreatedAt) {
		w.Append("updated", t.UpdatedAt.UTC().Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Trade.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string   `json:"id"`
		Portfolio string   `json:"portfolio"`
		Symbol    string   `json:"symbol"`
		Side      string   `json:"side"`
		Quantity  Quantity `json:"quantity"`
		Price     Money    `json:"price"`
		Fee       Money    `json:"fee"`
		Time      string   `json:"time"`
		Note      string   `json:"note"`
		Created   string   `json:"created"`
		Updated   string   `json:"updated"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	side, err := ParseSide(temp.Side)
	if err != nil {
		return err
	}

	parse := func(s string) (time.Time, error) {
		if s == "" {
			return time.Time{}, nil
		}
		return time.Parse(time.RFC3339, s)
	}
	when, err := parse(temp.Time)
	if err != nil {
		return fmt.Errorf("invalid trade time: %w", err)
	}
	created, err := parse(temp.Created)
	if err != nil {
		return fmt.Errorf("invalid trade creation time: %w", err)
	}
	updated, err := parse(temp.Updated)
	if err != nil {
		return fmt.Errorf("invalid trade update time: %w", err)
	}
	if updated.IsZero() {
		updated = created
	}

	t.ID = temp.ID
	t.PortfolioID = temp.Portfolio
	t.Symbol = temp.Symbol
	t.Side = side
	t.Quantity = temp.Quantity
	t.Price = temp.Price
	t.Fee = temp.Fee
	t.Time = when
	t.Note = temp.Note
	t.CreatedAt = created
	t.UpdatedAt = updated
	return nil
}
