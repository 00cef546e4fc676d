package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/leaguestat/schema"
)

// CoerceRecord converts one positional export row into a Record labeled with team.
// The export's own team cell is ignored. Numeric cells that do not parse as a
// finite non-negative number become 0; missing trailing cells count as empty.
func CoerceRecord(cells []string, team string) schema.Record {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	r := schema.Record{
		Team:   team,
		Player: cell(schema.ColPlayer),
		Level:  coerceLevel(cell(schema.ColLevel)),
		Role:   cell(schema.ColRole),
		Leader: cell(schema.ColLeader),
	}
	for _, m := range schema.AllMetrics {
		r.Metrics[m] = coerceNumber(cell(schema.MetricColumn(m)))
	}
	return r
}

// CoerceRoster converts every row of a roster section.
func CoerceRoster(rows [][]string, team string) schema.RosterData {
	records := make([]schema.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, CoerceRecord(row, team))
	}
	return schema.RosterData{Team: team, Records: records}
}

// coerceLevel parses a level, mapping anything coerceNumber rejects or that
// does not fit an int32 to 0.
func coerceLevel(s string) int {
	v := coerceNumber(s)
	if v > math.MaxInt32 {
		return 0
	}
	return int(v)
}

// coerceNumber parses s as a float, mapping failures, NaN, Inf and negatives to 0.
func coerceNumber(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
