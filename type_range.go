package journal

import "time"

// Range is a time interval with inclusive boundaries. A zero From means no
// lower bound, a zero To means no upper bound, so the zero Range matches
// every instant.
type Range struct{ From, To time.Time }

// NewRange creates a new range. If 'from' is after 'to', they are swapped.
func NewRange(from, to time.Time) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// AllTime is the unbounded range.
func AllTime() Range { return Range{} }

// IsAllTime reports whether the range has no boundaries at all.
func (r Range) IsAllTime() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains returns true if t is included in the range (boundaries included).
func (r Range) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}
