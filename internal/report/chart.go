package report

import "tally/internal/core"

// NoDataLabel names the placeholder segment drawn when there is nothing to
// chart; its sentinel value of 1 keeps the series non-empty for renderers.
const NoDataLabel = "No data"

const noDataColor = "#cbd5e1"

// palette is the fixed cyclic color palette for pie segments. Color
// assignment is a pure function of position so a given breakdown always
// renders the same way.
var palette = []string{
	"#4e79a7",
	"#f28e2b",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc948",
	"#b07aa1",
	"#ff9da7",
	"#9c755f",
	"#bab0ac",
}

// Segment is one labeled slice of the pie chart.
type Segment struct {
	Label string
	Value core.Money
	Color string
}

// PaletteColor returns the palette entry for position i, cycling past the end.
func PaletteColor(i int) string {
	return palette[i%len(palette)]
}

// Series projects a category breakdown into an ordered chart series. An
// empty breakdown yields the single placeholder segment.
func Series(byCategory []CategoryAmount) []Segment {
	if len(byCategory) == 0 {
		return []Segment{{Label: NoDataLabel, Value: core.Money{Cents: 1}, Color: noDataColor}}
	}
	out := make([]Segment, len(byCategory))
	for i, ca := range byCategory {
		out[i] = Segment{Label: ca.Name, Value: ca.Amount, Color: PaletteColor(i)}
	}
	return out
}
