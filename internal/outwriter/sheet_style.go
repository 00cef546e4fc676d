package outwriter

import (
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/leaguestat/schema"
)

// CellStyle names the fill and font family applied to a sheet row.
type CellStyle int

// All cell styles.
const (
	StyleNone   CellStyle = iota // separator rows stay blank
	StyleData                    // centered with a thin border
	StyleHeader                  // bold white on blue
	StyleTitle                   // bold white on light blue
	StyleStats                   // bold on pale blue
)

// BarDirective asks for a data bar on one metric cell.
type BarDirective struct {
	Metric schema.Metric
	Column int     // 0-based column index
	Max    float64 // upper bound of the bar scale, the lower bound is 0
	Color  string  // RGB hex without '#'
}

// SheetDirective is everything a renderer needs to style one row.
type SheetDirective struct {
	Style CellStyle
	Bars  []BarDirective
}

// Sheet colors.
const (
	headerFill = "366092"
	titleFill  = "4472C4"
	statsFill  = "D9E1F2"
)

type barPaint struct {
	hex  string
	term color.Attribute
}

var barPalette = map[schema.Metric]barPaint{
	schema.Kills:              {"FF0000", color.FgRed},
	schema.DamageToPlayers:    {"FF0000", color.FgRed},
	schema.Assists:            {"00FF00", color.FgGreen},
	schema.Healing:            {"00FF00", color.FgGreen},
	schema.DamageToStructures: {"FFFF00", color.FgYellow},
	schema.DamageTaken:        {"87CEEB", color.FgCyan},
	schema.Incapacitations:    {"800080", color.FgMagenta},
	schema.SpecialResourceA:   {"800080", color.FgMagenta},
	schema.SpecialResourceB:   {"FFC0CB", color.FgHiMagenta},
	schema.CrowdControl:       {"000080", color.FgBlue},
}

// BarColor returns the RGB hex of the data bar drawn for metric m.
func BarColor(m schema.Metric) string {
	return barPalette[m].hex
}

// DirectivesFor maps a row to its styling. It depends on nothing but the row.
func DirectivesFor(row schema.Row) SheetDirective {
	switch row.Kind {
	case schema.SeparatorRow:
		return SheetDirective{Style: StyleNone}
	case schema.HeaderRow:
		return SheetDirective{Style: StyleHeader}
	case schema.TitleRow:
		return SheetDirective{Style: StyleTitle}
	case schema.StatsRow:
		return SheetDirective{Style: StyleStats}
	}

	d := SheetDirective{Style: StyleData}
	for _, m := range schema.AllMetrics {
		if !row.Bars.Has(m) {
			continue
		}
		d.Bars = append(d.Bars, BarDirective{
			Metric: m,
			Column: schema.MetricColumn(m),
			Max:    row.Bars[m].Max,
			Color:  BarColor(m),
		})
	}
	return d
}

// EscapeFormula keeps spreadsheet applications from evaluating s as a formula.
func EscapeFormula(s string) string {
	if strings.HasPrefix(s, "=") || strings.ContainsAny(s, "+-*/()=") {
		return "'" + s
	}
	return s
}

var baseColumnWidths = []float64{12, 14, 8, 10, 14, 12, 12, 14}

const (
	defaultColumnWidth = 14
	statsColumnWidth   = 27
)

// ColumnWidths returns the width of every column of view.
func ColumnWidths(view schema.View) []float64 {
	widths := make([]float64, len(view.Columns))
	for i := range widths {
		widths[i] = defaultColumnWidth
		if i < len(baseColumnWidths) {
			widths[i] = baseColumnWidths[i]
		}
	}
	if view.Kind == schema.StatsView {
		// Statistics strings need room in the metric columns, except supply points
		for _, m := range schema.AllMetrics {
			if col := schema.MetricColumn(m); m != schema.SupplyPoints && col < len(widths) {
				widths[col] = statsColumnWidth
			}
		}
	}
	return widths
}
