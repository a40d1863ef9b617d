// Package report implements the aggregation side of the expense screen:
// resolving time windows, filtering records into them, summing by category,
// and projecting the sums into a drawable chart series.
package report

import (
	"time"

	"tally/internal/core"
)

// Filter selects which time window the screen shows.
type Filter string

const (
	FilterAll   Filter = "all"
	FilterWeek  Filter = "week"
	FilterMonth Filter = "month"
)

// ParseFilter maps a query-string value to a Filter, defaulting to All.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterWeek:
		return FilterWeek
	case FilterMonth:
		return FilterMonth
	default:
		return FilterAll
	}
}

// Label returns the human-readable name shown next to the total.
func (f Filter) Label() string {
	switch f {
	case FilterWeek:
		return "This week"
	case FilterMonth:
		return "This month"
	default:
		return "All time"
	}
}

// Window is a half-open date interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Resolve maps the filter plus a reference instant to a window. The second
// return value is false for All, which matches every record. Boundaries use
// the local calendar of ref; no timezone correction is applied.
func (f Filter) Resolve(ref time.Time) (Window, bool) {
	switch f {
	case FilterWeek:
		// Monday 00:00 of ref's week through the following Monday.
		weekday := (int(ref.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
		start := time.Date(ref.Year(), ref.Month(), ref.Day()-weekday, 0, 0, 0, 0, ref.Location())
		return Window{Start: start, End: start.AddDate(0, 0, 7)}, true
	case FilterMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return Window{Start: start, End: start.AddDate(0, 1, 0)}, true
	default:
		return Window{}, false
	}
}

// Apply returns the subsequence of records whose date falls in the filter's
// window, preserving input order. All returns the input slice unchanged.
// Records with a zero (unparseable) date fail closed: they are excluded from
// windowed views but still pass through All.
func (f Filter) Apply(ref time.Time, records []core.Expense) []core.Expense {
	w, ok := f.Resolve(ref)
	if !ok {
		return records
	}
	out := make([]core.Expense, 0, len(records))
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		if w.Contains(r.Date.Time) {
			out = append(out, r)
		}
	}
	return out
}
