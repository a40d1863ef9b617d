// Package screen owns the state behind the expense-tracking screen: the
// active time filter and the cached record list. The cache is a read
// replica of the store, replaced wholesale after every mutation; nothing is
// patched in place, so a failed store call simply leaves the previous list
// visible.
package screen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tally/internal/core"
	"tally/internal/report"
	"tally/internal/store"
)

// Input carries raw form values for an add or edit. Parsing and validation
// happen here so a rejected submission never reaches the store.
type Input struct {
	Amount   string
	Category string
	Note     string
	Date     string
}

// View is the render snapshot handed to the presentation layer.
type View struct {
	Filter  report.Filter
	Label   string
	Records []core.Expense
	Summary report.Summary
	Series  []report.Segment
}

// Controller serializes all screen operations behind one mutex. The
// original screen was single-threaded; the HTTP server is not, so the lock
// restores the one-operation-at-a-time model.
type Controller struct {
	mu      sync.Mutex
	store   store.Store
	filter  report.Filter
	records []core.Expense
}

func NewController(st store.Store) *Controller {
	return &Controller{store: st, filter: report.FilterAll}
}

// Refresh replaces the cached list with a fresh SelectAll. On failure the
// previous cache stays in place.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reload(ctx)
}

// reload is the locked half of Refresh. Callers must hold c.mu; holding it
// across the SelectAll is what keeps a slow reload from overwriting the
// cache with a snapshot older than a later mutation's.
func (c *Controller) reload(ctx context.Context) error {
	records, err := c.store.SelectAll(ctx)
	if err != nil {
		return fmt.Errorf("reload expenses: %w", err)
	}
	c.records = records
	return nil
}

// Add validates the input and inserts a new record, then reloads the cache.
// The date defaults to today when left blank. Validation errors come back
// as core sentinels and nothing is written.
func (c *Controller) Add(ctx context.Context, in Input) error {
	e, err := parseInput(in, time.Now())
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.store.Insert(ctx, e); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return c.reload(ctx)
}

// Edit replaces all four mutable fields of the record with the given id,
// then reloads the cache. Unlike Add, a blank date is rejected rather than
// defaulted.
func (c *Controller) Edit(ctx context.Context, id int64, in Input) error {
	e, err := parseInput(in, time.Time{})
	if err != nil {
		return err
	}
	e.ID = id
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Update(ctx, e); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return c.reload(ctx)
}

// Delete removes the record with the given id and reloads the cache.
// Deleting an id that is already gone is a no-op at the store level.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return c.reload(ctx)
}

// SetFilter switches the active time window.
func (c *Controller) SetFilter(f report.Filter) {
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
}

// Filter returns the active filter.
func (c *Controller) Filter() report.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// View snapshots the screen at the given reference instant: the cached
// records filtered by the active window, their summary, and the chart
// series.
func (c *Controller) View(now time.Time) View {
	c.mu.Lock()
	filter := c.filter
	records := c.records
	c.mu.Unlock()

	filtered := filter.Apply(now, records)
	summary := report.Summarize(filtered)

	slog.Debug("Screen view built",
		"filter", string(filter),
		"records", len(filtered),
		"total_cents", summary.Total.Cents)

	return View{
		Filter:  filter,
		Label:   filter.Label(),
		Records: filtered,
		Summary: summary,
		Series:  report.Series(summary.ByCategory),
	}
}

// parseInput builds a validated Expense from raw form values. When
// defaultDay is nonzero a blank date falls back to that day.
func parseInput(in Input, defaultDay time.Time) (core.Expense, error) {
	cents, err := core.ParseDecimalToCents(in.Amount)
	if err != nil {
		return core.Expense{}, err
	}

	var date core.Date
	if strings.TrimSpace(in.Date) == "" && !defaultDay.IsZero() {
		date = core.DateOf(defaultDay)
	} else {
		date, err = core.ParseDate(in.Date)
		if err != nil {
			return core.Expense{}, err
		}
	}

	e := core.Expense{
		Amount:   core.Money{Cents: cents},
		Category: strings.TrimSpace(in.Category),
		Note:     strings.TrimSpace(in.Note),
		Date:     date,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return e, nil
}
