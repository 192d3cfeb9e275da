package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxNameLen bounds a portfolio's display name.
const MaxNameLen = 80

// Portfolio is the container of trades and journal entries. It holds the
// initial capital and the base currency: every amount in a portfolio is in
// that single currency, there is no cross-portfolio aggregation.
type Portfolio struct {
	ID             string
	Name           string
	Currency       string // ISO 4217 base currency
	Market         string // free-form market tag, e.g. "IDX" or "NASDAQ"
	InitialCapital Money
	Oversell       OversellPolicy
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPortfolio creates a portfolio with a fresh identifier.
func NewPortfolio(name, currency, market string, initialCapital Money) Portfolio {
	now := time.Now().UTC()
	return Portfolio{
		ID:             uuid.NewString(),
		Name:           name,
		Currency:       currency,
		Market:         market,
		InitialCapital: initialCapital.WithCurrency(currency),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (p Portfolio) Validate() error {
	if p.Name == "" {
		return errors.New("portfolio name is missing")
	}
	if len(p.Name) > MaxNameLen {
		return fmt.Errorf("portfolio name exceeds %d characters", MaxNameLen)
	}
	if err := ValidateCurrency(p.Currency); err != nil {
		return fmt.Errorf("invalid portfolio currency: %w", err)
	}
	if p.InitialCapital.IsNegative() {
		return fmt.Errorf("initial capital must not be negative, got %s", p.InitialCapital)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Portfolio.
func (p Portfolio) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("currency", p.Currency)
	w.Optional("market", p.Market)
	w.Append("capital", p.InitialCapital)
	if p.Oversell != RejectOversell {
		w.Append("oversell", p.Oversell.String())
	}
	if !p.CreatedAt.IsZero() {
		w.Append("created", p.CreatedAt.UTC().Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Portfolio.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Currency string `json:"currency"`
		Market   string `json:"market"`
		Capital  Money  `json:"capital"`
		Oversell string `json:"oversell"`
		Created  string `json:"created"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	policy := RejectOversell
	if temp.Oversell != "" {
		var err error
		if policy, err = ParseOversellPolicy(temp.Oversell); err != nil {
			return err
		}
	}
	var created time.Time
	if temp.Created != "" {
		var err error
		if created, err = time.Parse(time.RFC3339, temp.Created); err != nil {
			return fmt.Errorf("invalid portfolio creation time: %w", err)
		}
	}

	p.ID = temp.ID
	p.Name = temp.Name
	p.Currency = temp.Currency
	p.Market = temp.Market
	p.InitialCapital = temp.Capital.WithCurrency(temp.Currency)
	p.Oversell = policy
	p.CreatedAt = created
	p.UpdatedAt = created
	return nil
}
