package core

import (
	"slices"
	"sync"

	"github.com/huangsam/leaguestat/schema"
)

// BuildRankedView lays out records grouped by dim. Each group after the first is
// preceded by a blank separator and a repeated column header.
func BuildRankedView(name string, records []schema.Record, dim schema.Dimension) schema.View {
	columns := schema.RecordColumns()
	var rows []schema.Row
	for i, g := range GroupRecords(records, dim) {
		if i > 0 {
			rows = append(rows,
				schema.Row{Kind: schema.SeparatorRow},
				schema.Row{Kind: schema.HeaderRow, Group: g.Key, Cells: slices.Clone(columns)},
			)
		}
		rows = append(rows, dataRows(g)...)
	}
	return schema.View{
		Name:      name,
		Kind:      schema.RankedView,
		Dimension: dim,
		Columns:   columns,
		Rows:      rows,
	}
}

// BuildStatsView lays out one section per group of dim: a title row, a
// statistics row, a repeated header and the ranked records. Sections are
// separated by a blank row. The per-group statistics are returned alongside.
func BuildStatsView(name string, records []schema.Record, dim schema.Dimension) (schema.View, []schema.GroupStatistics) {
	columns := schema.RecordColumns()
	groups := GroupRecords(records, dim)
	stats := summarizeGroups(groups)

	var rows []schema.Row
	for i, g := range groups {
		if i > 0 {
			rows = append(rows, schema.Row{Kind: schema.SeparatorRow})
		}
		gs := stats[i]
		rows = append(rows,
			schema.Row{Kind: schema.TitleRow, Group: g.Key, Cells: TitleCells(g.Key, dim)},
			schema.Row{Kind: schema.StatsRow, Group: g.Key, Cells: StatsCells(gs, dim), Stats: &gs},
			schema.Row{Kind: schema.HeaderRow, Group: g.Key, Cells: slices.Clone(columns)},
		)
		rows = append(rows, dataRows(g)...)
	}
	view := schema.View{
		Name:      name,
		Kind:      schema.StatsView,
		Dimension: dim,
		Columns:   columns,
		Rows:      rows,
	}
	return view, stats
}

// BuildTopView lays out the ungrouped ranking of records, keeping the first limit.
// Bars are scaled against the kept records only.
func BuildTopView(name string, records []schema.Record, limit int) schema.View {
	return BuildRankedView(name, RankRecords(records, limit), schema.DimensionNone)
}

// BuildComparisonView lays out one summary row per roster.
func BuildComparisonView(name string, summaries ...schema.GroupStatistics) schema.View {
	rows := make([]schema.Row, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, schema.Row{
			Kind:  schema.StatsRow,
			Group: s.Label,
			Cells: ComparisonCells(s),
			Stats: &s,
		})
	}
	return schema.View{
		Name:      name,
		Kind:      schema.ComparisonView,
		Dimension: schema.DimensionNone,
		Columns:   ComparisonColumns(),
		Rows:      rows,
	}
}

// dataRows decorates the records of one group with their intensity bars.
func dataRows(g Group) []schema.Row {
	bars := Scales(g.Records)
	rows := make([]schema.Row, 0, len(g.Records))
	for i := range g.Records {
		rec := g.Records[i]
		rows = append(rows, schema.Row{
			Kind:   schema.DataRow,
			Group:  g.Key,
			Record: &rec,
			Bars:   bars[i],
		})
	}
	return rows
}

// BuildRosterReport assembles every view of a single roster.
func BuildRosterReport(roster schema.RosterData, sheets schema.RosterSheets) schema.RosterReport {
	report := schema.RosterReport{
		Team:          roster.Team,
		LeaderRanking: BuildRankedView(sheets.LeaderRanking, roster.Records, schema.ByLeader),
		RoleRanking:   BuildRankedView(sheets.RoleRanking, roster.Records, schema.ByRole),
		Summary:       SummarizeRoster(roster),
	}
	report.RoleStats, report.RoleGroups = BuildStatsView(sheets.RoleStats, roster.Records, schema.ByRole)
	report.LeaderStats, report.LeaderGroups = BuildStatsView(sheets.LeaderStats, roster.Records, schema.ByLeader)
	return report
}

// CombineRosters returns the union of both rosters, home records first.
func CombineRosters(home, away schema.RosterData) []schema.Record {
	combined := make([]schema.Record, 0, len(home.Records)+len(away.Records))
	combined = append(combined, home.Records...)
	return append(combined, away.Records...)
}

// BuildMatchReport assembles the full workbook of a match. The independent
// views are computed concurrently over the read-only rosters.
func BuildMatchReport(match *schema.MatchData) schema.MatchReport {
	var report schema.MatchReport
	var wg sync.WaitGroup
	wg.Go(func() { report.Home = BuildRosterReport(match.Home, schema.HomeSheets) })
	wg.Go(func() { report.Away = BuildRosterReport(match.Away, schema.AwaySheets) })
	wg.Go(func() {
		report.CombinedRoleRanking = BuildRankedView(schema.SheetCombinedRoles, CombineRosters(match.Home, match.Away), schema.ByRole)
	})
	wg.Wait()

	report.Comparison = BuildComparisonView(schema.SheetComparison, report.Home.Summary, report.Away.Summary)
	return report
}
