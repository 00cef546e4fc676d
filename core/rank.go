package core

import (
	"cmp"
	"slices"

	"github.com/huangsam/leaguestat/schema"
)

// RankKey returns the value a record is ordered by inside a group of dimension dim.
// Only role grouping consults the role policy; leader grouping and ungrouped
// rankings always use damage dealt to players.
func RankKey(r schema.Record, dim schema.Dimension) float64 {
	if dim == schema.ByRole {
		return r.Value(schema.PolicyFor(r.Role).RankMetric)
	}
	return r.Value(schema.DamageToPlayers)
}

// GroupKey returns the grouping key of r for dimension dim.
func GroupKey(r schema.Record, dim schema.Dimension) string {
	switch dim {
	case schema.ByRole:
		return r.Role
	case schema.ByLeader:
		return r.Leader
	default:
		return ""
	}
}

// sortForGrouping returns a stably sorted copy of records ordered by group key
// ascending, then rank key descending. Ties keep their input order.
func sortForGrouping(records []schema.Record, dim schema.Dimension) []schema.Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b schema.Record) int {
		if c := cmp.Compare(GroupKey(a, dim), GroupKey(b, dim)); c != 0 {
			return c
		}
		return cmp.Compare(RankKey(b, dim), RankKey(a, dim))
	})
	return sorted
}

// RankRecords returns the top limit records of an ungrouped ranking.
// A limit of 0 or less returns every record.
func RankRecords(records []schema.Record, limit int) []schema.Record {
	ranked := sortForGrouping(records, schema.DimensionNone)
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
