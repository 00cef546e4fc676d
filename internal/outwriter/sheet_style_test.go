package outwriter

import (
	"testing"

	"github.com/huangsam/leaguestat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeFormula(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"云裳", "云裳"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"a-b", "'a-b"},
		{"(队长)", "'(队长)"},
		{"x+y", "'x+y"},
		{"a/b", "'a/b"},
		{"2*3", "'2*3"},
		{"=== 铁衣 ===", "'=== 铁衣 ==="},
		{"总计: 12, 平均: 3.0", "总计: 12, 平均: 3.0"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeFormula(tt.in), "input %q", tt.in)
	}
}

func TestDirectivesFor(t *testing.T) {
	view := rankedFixture("v")

	d := DirectivesFor(view.Rows[0])
	assert.Equal(t, StyleData, d.Style)
	require.Len(t, d.Bars, 2)
	assert.Equal(t, BarDirective{Metric: schema.Kills, Column: schema.MetricColumn(schema.Kills), Max: 4, Color: "FF0000"}, d.Bars[0])
	assert.Equal(t, schema.DamageToPlayers, d.Bars[1].Metric)
	assert.Equal(t, 1000.0, d.Bars[1].Max)

	assert.Equal(t, SheetDirective{Style: StyleNone}, DirectivesFor(view.Rows[2]))
	assert.Equal(t, StyleHeader, DirectivesFor(view.Rows[3]).Style)

	stats := statsFixture("s")
	assert.Equal(t, StyleTitle, DirectivesFor(stats.Rows[0]).Style)
	assert.Equal(t, StyleStats, DirectivesFor(stats.Rows[1]).Style)
}

func TestDirectivesForIsStateless(t *testing.T) {
	rows := rankedFixture("v").Rows
	first := make([]SheetDirective, len(rows))
	for i, row := range rows {
		first[i] = DirectivesFor(row)
	}
	// Rendering in reverse order must not change any directive
	for i := len(rows) - 1; i >= 0; i-- {
		assert.Equal(t, first[i], DirectivesFor(rows[i]))
	}
}

func TestDirectivesForRowWithoutBars(t *testing.T) {
	rec := player("idle", "铁衣", "阿青", 0, 0)
	d := DirectivesFor(schema.Row{Kind: schema.DataRow, Record: &rec})
	assert.Equal(t, StyleData, d.Style)
	assert.Empty(t, d.Bars)
}

func TestBarColor(t *testing.T) {
	assert.Equal(t, "FF0000", BarColor(schema.Kills))
	assert.Equal(t, "00FF00", BarColor(schema.Healing))
	assert.Equal(t, "87CEEB", BarColor(schema.DamageTaken))
	assert.Equal(t, "FFC0CB", BarColor(schema.SpecialResourceB))
	assert.Equal(t, "000080", BarColor(schema.CrowdControl))
	assert.Empty(t, BarColor(schema.SupplyPoints))
}

func TestColumnWidths(t *testing.T) {
	ranked := ColumnWidths(rankedFixture("r"))
	require.Len(t, ranked, schema.ColumnCount)
	assert.Equal(t, []float64{12, 14, 8, 10, 14, 12, 12, 14}, ranked[:8])
	assert.Equal(t, 14.0, ranked[15])

	stats := ColumnWidths(statsFixture("s"))
	assert.Equal(t, 27.0, stats[5])  // F
	assert.Equal(t, 27.0, stats[6])  // G
	assert.Equal(t, 14.0, stats[7])  // H
	assert.Equal(t, 27.0, stats[8])  // I
	assert.Equal(t, 27.0, stats[15]) // P
	assert.Equal(t, 12.0, stats[0])
}
