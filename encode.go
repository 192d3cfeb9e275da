package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordKind discriminates the JSONL records of a book file.
type RecordKind string

const (
	KindPortfolio RecordKind = "portfolio"
	KindTrade     RecordKind = "trade"
	KindJournal   RecordKind = "journal"
)

// DecodeBook reads a book from a stream of JSONL records. The first record
// must be the portfolio; trade and journal records may then come in any
// order. All amounts are tagged with the portfolio's base currency.
func DecodeBook(r io.Reader) (*Book, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var book *Book
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var identifier struct {
			Kind RecordKind `json:"kind"`
		}
		if err := json.Unmarshal(raw, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record: %w", line, err)
		}

		switch identifier.Kind {
		case KindPortfolio:
			if book != nil {
				return nil, fmt.Errorf("line %d: duplicate portfolio record", line)
			}
			var p Portfolio
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, fmt.Errorf("line %d: invalid portfolio record: %w", line, err)
			}
			var err error
			if book, err = NewBook(p); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}

		case KindTrade:
			if book == nil {
				return nil, fmt.Errorf("line %d: trade record before portfolio record", line)
			}
			var t Trade
			if err := json.Unmarshal(raw, &t); err != nil {
				return nil, fmt.Errorf("line %d: invalid trade record: %w", line, err)
			}
			t.Price = t.Price.WithCurrency(book.Portfolio.Currency)
			t.Fee = t.Fee.WithCurrency(book.Portfolio.Currency)
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			book.Trades = append(book.Trades, t)

		case KindJournal:
			if book == nil {
				return nil, fmt.Errorf("line %d: journal record before portfolio record", line)
			}
			var e Entry
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("line %d: invalid journal record: %w", line, err)
			}
			if err := e.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			book.Entries = append(book.Entries, e)

		default:
			return nil, fmt.Errorf("line %d: unknown record kind %q", line, identifier.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("book has no portfolio record")
	}
	return book, nil
}

// EncodeBook writes a book as canonical JSONL: the portfolio record first,
// then trades, then journal entries, all in Fmt order. Encoding the result
// of DecodeBook is reproducible byte for byte.
func EncodeBook(w io.Writer, b *Book) error {
	b = b.Fmt()

	write := func(kind RecordKind, v json.Marshaler) error {
		body, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		var rec jsonObjectWriter
		rec.Append("kind", kind)
		rec.Embed(body)
		out, err := rec.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}

	if err := write(KindPortfolio, b.Portfolio); err != nil {
		return fmt.Errorf("encoding portfolio: %w", err)
	}
	for _, t := range b.Trades {
		if err := write(KindTrade, t); err != nil {
			return fmt.Errorf("encoding trade %s: %w", t.ID, err)
		}
	}
	for _, e := range b.Entries {
		if err := write(KindJournal, e); err != nil {
			return fmt.Errorf("encoding journal entry %s: %w", e.ID, err)
		}
	}
	return nil
}
