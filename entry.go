package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sentiment tags the mood of a journal reflection.
type Sentiment string

const (
	Bullish Sentiment = "bullish"
	Bearish Sentiment = "bearish"
	Neutral Sentiment = "neutral"
)

// MaxEntryLen bounds the text of a journal reflection.
const MaxEntryLen = 2000

// Entry is a written reflection a user attaches to one of their trades: the
// reasoning behind the execution, reviewed later against the realized
// outcome.
type Entry struct {
	ID          string
	PortfolioID string
	TradeID     string
	Sentiment   Sentiment // optional
	Text        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEntry creates a reflection attached to the given trade.
func NewEntry(portfolioID, tradeID, text string, sentiment Sentiment) Entry {
	now := time.Now().UTC()
	return Entry{
		ID:          uuid.NewString(),
		PortfolioID: portfolioID,
		TradeID:     tradeID,
		Sentiment:   sentiment,
		Text:        text,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (e Entry) Validate() error {
	if e.TradeID == "" {
		return errors.New("journal entry trade reference is missing")
	}
	if e.Text == "" {
		return errors.New("journal entry text is empty")
	}
	if len(e.Text) > MaxEntryLen {
		return fmt.Errorf("journal entry text exceeds %d characters", MaxEntryLen)
	}
	switch e.Sentiment {
	case "", Bullish, Bearish, Neutral:
	default:
		return fmt.Errorf("unknown sentiment %q", e.Sentiment)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Entry.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Optional("portfolio", e.PortfolioID)
	w.Append("trade", e.TradeID)
	w.Optional("sentiment", string(e.Sentiment))
	w.Append("text", e.Text)
	if !e.CreatedAt.IsZero() {
		w.Append("created", e.CreatedAt.UTC().Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Entry.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string `json:"id"`
		Portfolio string `json:"portfolio"`
		Trade     string `json:"trade"`
		Sentiment string `json:"sentiment"`
		Text      string `json:"text"`
		Created   string `json:"created"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	var created time.Time
	if temp.Created != "" {
		var err error
		if created, err = time.Parse(time.RFC3339, temp.Created); err != nil {
			return fmt.Errorf("invalid journal entry creation time: %w", err)
		}
	}

	e.ID = temp.ID
	e.PortfolioID = temp.Portfolio
	e.TradeID = temp.Trade
	e.Sentiment = Sentiment(temp.Sentiment)
	e.Text = temp.Text
	e.CreatedAt = created
	e.UpdatedAt = created
	return nil
}
