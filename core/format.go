package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/leaguestat/schema"
)

// statStyle selects how a metric is summarized in a statistics row.
type statStyle int

const (
	styleCountMean statStyle = iota // 总计: 12, 平均: 3.0
	styleTotalOnly                  // 总计: 12
	styleGrouped                    // 总计: 1,234, 平均: 617
)

var metricStatStyles = map[schema.Metric]statStyle{
	schema.SupplyPoints:       styleTotalOnly,
	schema.DamageToPlayers:    styleGrouped,
	schema.DamageToStructures: styleGrouped,
	schema.Healing:            styleGrouped,
	schema.DamageTaken:        styleGrouped,
}

var comparisonHeaders = [schema.MetricCount]string{
	"总击败数", "总助攻数", "总战备资源", "总对玩家伤害", "总对建筑伤害", "总治疗值",
	"总承受伤害", "总重伤数", "总青灯焚骨", "总化羽数", "总控制数",
}

// ComparisonColumns returns the headers of the roster comparison table.
func ComparisonColumns() []string {
	cols := []string{"帮会名", "总人数"}
	return append(cols, comparisonHeaders[:]...)
}

// FormatPlain renders v without trailing zeros, e.g. 12 or 12.5.
func FormatPlain(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMean renders a mean with one decimal.
func FormatMean(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatGrouped renders v rounded to an integer with thousands separators.
func FormatGrouped(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	r := math.RoundToEven(v)
	if math.Abs(r) >= math.MaxInt64 {
		return humanize.Commaf(r)
	}
	return humanize.Comma(int64(r))
}

// FormatMetricSummary renders the statistics cell of metric m.
func FormatMetricSummary(stats schema.GroupStatistics, m schema.Metric) string {
	sum, mean := stats.Sums[m], stats.Mean(m)
	switch metricStatStyles[m] {
	case styleTotalOnly:
		return "总计: " + FormatPlain(sum)
	case styleGrouped:
		return fmt.Sprintf("总计: %s, 平均: %s", FormatGrouped(sum), FormatGrouped(mean))
	default:
		return fmt.Sprintf("总计: %s, 平均: %s", FormatPlain(sum), FormatMean(mean))
	}
}

// StatsCells lays out the statistics row of a group under the record columns.
// The label lands in the grouping column of dim.
func StatsCells(stats schema.GroupStatistics, dim schema.Dimension) []string {
	cells := make([]string, schema.ColumnCount)
	cells[schema.ColPlayer] = fmt.Sprintf("人数: %d", stats.Count)
	cells[schema.ColLevel] = "平均: " + FormatMean(stats.LevelMean())
	for _, m := range schema.AllMetrics {
		cells[schema.MetricColumn(m)] = FormatMetricSummary(stats, m)
	}
	cells[schema.GroupColumn(dim)] = stats.Label + "统计"
	return cells
}

// TitleCells lays out the decorative title row of a group.
func TitleCells(key string, dim schema.Dimension) []string {
	cells := make([]string, schema.ColumnCount)
	cells[schema.GroupColumn(dim)] = fmt.Sprintf("=== %s ===", key)
	return cells
}

// ComparisonCells lays out one roster row of the comparison table.
func ComparisonCells(stats schema.GroupStatistics) []string {
	cells := make([]string, 0, 2+schema.MetricCount)
	cells = append(cells, stats.Label, strconv.Itoa(stats.Count))
	for _, m := range schema.AllMetrics {
		cells = append(cells, FormatPlain(stats.Sums[m]))
	}
	return cells
}
