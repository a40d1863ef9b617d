package report

import (
	"strings"

	"tally/internal/core"
)

// CategoryAmount is an amount summed over one category label.
type CategoryAmount struct {
	Name   string
	Amount core.Money
}

// Summary holds the aggregate view of a record list: the grand total and
// the per-category breakdown in first-occurrence order.
type Summary struct {
	Total      core.Money
	ByCategory []CategoryAmount
}

// Summarize sums amounts by category. Records with a blank category are
// grouped under core.Uncategorized. ByCategory has one entry per distinct
// label present in the input, ordered by first occurrence; callers must not
// treat that order as sorted.
func Summarize(records []core.Expense) Summary {
	var s Summary
	index := make(map[string]int, len(records))
	for _, r := range records {
		name := strings.TrimSpace(r.Category)
		if name == "" {
			name = core.Uncategorized
		}
		s.Total = s.Total.Add(r.Amount)
		if i, ok := index[name]; ok {
			s.ByCategory[i].Amount = s.ByCategory[i].Amount.Add(r.Amount)
			continue
		}
		index[name] = len(s.ByCategory)
		s.ByCategory = append(s.ByCategory, CategoryAmount{Name: name, Amount: r.Amount})
	}
	return s
}
