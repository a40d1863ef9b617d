package http

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"tally/internal/core"
	"tally/internal/report"
	"tally/internal/screen"
)

// formView carries the add-form values back to the template so a rejected
// submission keeps what the user typed.
type formView struct {
	Amount   string
	Category string
	Note     string
	Date     string
	Invalid  bool
}

type recordView struct {
	ID       int64
	Amount   string
	Category string
	Note     string
	Date     string
}

type legendView struct {
	Label   string
	Amount  string
	Color   string
	Percent string
}

type pageView struct {
	Filter      report.Filter
	FilterLabel string
	Total       string
	Records     []recordView
	Legend      []legendView
	PieGradient template.CSS
	HasRecords  bool
	Form        formView
	Today       string
}

// buildPage assembles the full render model from a screen snapshot.
func buildPage(v screen.View, form formView) pageView {
	page := pageView{
		Filter:      v.Filter,
		FilterLabel: v.Label,
		Total:       v.Summary.Total.String(),
		PieGradient: pieGradient(v.Series),
		HasRecords:  len(v.Records) > 0,
		Form:        form,
		Today:       core.DateOf(time.Now()).String(),
	}
	for _, r := range v.Records {
		page.Records = append(page.Records, recordView{
			ID:       r.ID,
			Amount:   r.Amount.String(),
			Category: r.Category,
			Note:     r.Note,
			Date:     r.Date.String(),
		})
	}
	if len(v.Summary.ByCategory) > 0 {
		total := v.Summary.Total.Cents
		if total <= 0 {
			total = 1
		}
		for _, seg := range v.Series {
			share := float64(seg.Value.Cents) / float64(total) * 100
			page.Legend = append(page.Legend, legendView{
				Label:   seg.Label,
				Amount:  seg.Value.String(),
				Color:   seg.Color,
				Percent: fmt.Sprintf("%.1f%%", share),
			})
		}
	}
	return page
}

// pieGradient turns the chart series into CSS conic-gradient stops. The
// series is never empty, so the gradient always has at least one stop.
func pieGradient(series []report.Segment) template.CSS {
	var total int64
	for _, seg := range series {
		total += seg.Value.Cents
	}
	if total <= 0 {
		total = 1
	}

	var (
		stops []string
		acc   float64
	)
	for i, seg := range series {
		start := acc
		acc += float64(seg.Value.Cents) / float64(total) * 100
		end := acc
		if i == len(series)-1 {
			end = 100 // absorb rounding drift on the final slice
		}
		stops = append(stops, fmt.Sprintf("%s %.2f%% %.2f%%", seg.Color, start, end))
	}
	return template.CSS("conic-gradient(" + strings.Join(stops, ", ") + ")")
}

// sanitizeInput strips control characters from form values before they
// reach validation or storage.
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
