package journal

import (
	"fmt"
	"strings"
	"time"
)

// Period is a standard calendar reporting period.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "day", "week", "month").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// StartOf returns the instant the period containing t begins, in t's location.
func (p Period) StartOf(t time.Time) time.Time {
	y, m, d := t.Date()
	switch p {
	case Daily:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	case Weekly:
		offset := int(t.Weekday() - time.Monday)
		if offset < 0 {
			offset += 7
		}
		return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case Quarterly:
		startMonth := time.Month((int(m)-1)/3*3 + 1)
		return time.Date(y, startMonth, 1, 0, 0, 0, 0, t.Location())
	case Yearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		panic("unknown period")
	}
}

// next returns the instant the period after the one containing t begins.
func (p Period) next(t time.Time) time.Time {
	start := p.StartOf(t)
	switch p {
	case Daily:
		return start.AddDate(0, 0, 1)
	case Weekly:
		return start.AddDate(0, 0, 7)
	case Monthly:
		return start.AddDate(0, 1, 0)
	case Quarterly:
		return start.AddDate(0, 3, 0)
	case Yearly:
		return start.AddDate(1, 0, 0)
	default:
		panic("unknown period")
	}
}

// Range returns the full calendar range of the period containing t.
func (p Period) Range(t time.Time) Range {
	return Range{From: p.StartOf(t), To: p.next(t).Add(-time.Nanosecond)}
}

// ToDate returns the range from the start of the period containing t up to t
// itself (e.g., Yearly.ToDate is a year-to-date filter).
func (p Period) ToDate(t time.Time) Range {
	return Range{From: p.StartOf(t), To: t}
}

// YearToDate is the range from January 1st of t's year up to t.
func YearToDate(t time.Time) Range { return Yearly.ToDate(t) }

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
