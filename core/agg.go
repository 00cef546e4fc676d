package core

import "github.com/huangsam/leaguestat/schema"

// Summarize computes count, level sum and per-metric sums over records.
// Means derive from these on demand and are NaN for an empty input.
func Summarize(label string, records []schema.Record) schema.GroupStatistics {
	stats := schema.GroupStatistics{Label: label, Count: len(records)}
	for _, r := range records {
		stats.LevelSum += float64(r.Level)
		for _, m := range schema.AllMetrics {
			stats.Sums[m] += r.Metrics[m]
		}
	}
	return stats
}

// SummarizeRoster computes the whole-roster statistics labeled by team.
func SummarizeRoster(roster schema.RosterData) schema.GroupStatistics {
	return Summarize(roster.Team, roster.Records)
}

// SummarizeGroups computes one statistics entry per group of dim, in ascending key order.
func SummarizeGroups(records []schema.Record, dim schema.Dimension) []schema.GroupStatistics {
	groups := GroupRecords(records, dim)
	return summarizeGroups(groups)
}

func summarizeGroups(groups []Group) []schema.GroupStatistics {
	out := make([]schema.GroupStatistics, 0, len(groups))
	for _, g := range groups {
		out = append(out, Summarize(g.Key, g.Records))
	}
	return out
}
