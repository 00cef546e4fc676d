package outwriter

import (
	"github.com/huangsam/leaguestat/schema"
)

func player(name, role, leader string, kills, dmg float64) schema.Record {
	rec := schema.Record{Team: "本帮", Player: name, Level: 90, Role: role, Leader: leader}
	rec.Metrics[schema.Kills] = kills
	rec.Metrics[schema.DamageToPlayers] = dmg
	return rec
}

func dataRow(group string, rec schema.Record, maxKills, maxDmg float64) schema.Row {
	row := schema.Row{Kind: schema.DataRow, Group: group, Record: &rec}
	if rec.Metrics[schema.Kills] > 0 {
		row.Bars[schema.Kills] = schema.Bar{Value: rec.Metrics[schema.Kills], Max: maxKills}
	}
	if rec.Metrics[schema.DamageToPlayers] > 0 {
		row.Bars[schema.DamageToPlayers] = schema.Bar{Value: rec.Metrics[schema.DamageToPlayers], Max: maxDmg}
	}
	return row
}

// rankedFixture has two role groups: 铁衣 with two players, 神相 with one.
func rankedFixture(name string) schema.View {
	cols := schema.RecordColumns()
	return schema.View{
		Name:      name,
		Kind:      schema.RankedView,
		Dimension: schema.ByRole,
		Columns:   cols,
		Rows: []schema.Row{
			dataRow("铁衣", player("a-1", "铁衣", "阿青", 4, 1000), 4, 1000),
			dataRow("铁衣", player("b", "铁衣", "阿青", 2, 500), 4, 1000),
			{Kind: schema.SeparatorRow},
			{Kind: schema.HeaderRow, Group: "神相", Cells: cols},
			dataRow("神相", player("c", "神相", "=SUM(A1)", 1, 200), 1, 200),
		},
	}
}

func statsFixture(name string) schema.View {
	cols := schema.RecordColumns()
	title := make([]string, schema.ColumnCount)
	title[schema.ColRole] = "=== 铁衣 ==="
	stats := make([]string, schema.ColumnCount)
	stats[schema.ColRole] = "铁衣统计"
	stats[schema.ColPlayer] = "人数: 1"
	gs := schema.GroupStatistics{Label: "铁衣", Count: 1, LevelSum: 90}
	return schema.View{
		Name:      name,
		Kind:      schema.StatsView,
		Dimension: schema.ByRole,
		Columns:   cols,
		Rows: []schema.Row{
			{Kind: schema.TitleRow, Group: "铁衣", Cells: title},
			{Kind: schema.StatsRow, Group: "铁衣", Cells: stats, Stats: &gs},
			{Kind: schema.HeaderRow, Group: "铁衣", Cells: cols},
			dataRow("铁衣", player("a", "铁衣", "阿青", 4, 1000), 4, 1000),
		},
	}
}

func comparisonFixture(name string) schema.View {
	home := schema.GroupStatistics{Label: "本帮", Count: 2}
	home.Sums[schema.Kills] = 6
	away := schema.GroupStatistics{Label: "敌帮", Count: 1}
	cols := []string{"帮会名", "总人数"}
	for _, m := range schema.AllMetrics {
		cols = append(cols, "总"+m.Header())
	}
	cells := func(s schema.GroupStatistics) []string {
		out := []string{s.Label, formatValue(float64(s.Count))}
		for _, m := range schema.AllMetrics {
			out = append(out, formatValue(s.Sums[m]))
		}
		return out
	}
	return schema.View{
		Name:      name,
		Kind:      schema.ComparisonView,
		Dimension: schema.DimensionNone,
		Columns:   cols,
		Rows: []schema.Row{
			{Kind: schema.StatsRow, Group: home.Label, Cells: cells(home), Stats: &home},
			{Kind: schema.StatsRow, Group: away.Label, Cells: cells(away), Stats: &away},
		},
	}
}

func reportFixture() (*schema.MatchReport, *schema.MatchData) {
	report := &schema.MatchReport{
		Home: schema.RosterReport{
			Team:          "本帮",
			LeaderRanking: rankedFixture(schema.SheetHomeLeaderRanking),
			RoleRanking:   rankedFixture(schema.SheetHomeRoleRanking),
			RoleStats:     statsFixture(schema.SheetHomeRoleStats),
			LeaderStats:   statsFixture(schema.SheetHomeLeaderStats),
		},
		Away: schema.RosterReport{
			Team:          "敌帮",
			LeaderRanking: rankedFixture(schema.SheetAwayLeaderRanking),
			RoleRanking:   rankedFixture(schema.SheetAwayRoleRanking),
			RoleStats:     statsFixture(schema.SheetAwayRoleStats),
			LeaderStats:   statsFixture(schema.SheetAwayLeaderStats),
		},
		CombinedRoleRanking: rankedFixture(schema.SheetCombinedRoles),
		Comparison:          comparisonFixture(schema.SheetComparison),
	}
	match := &schema.MatchData{
		Source:  "match.csv",
		Home:    schema.RosterData{Team: "本帮", Records: []schema.Record{player("a", "铁衣", "阿青", 4, 1000)}},
		Away:    schema.RosterData{Team: "敌帮", Records: []schema.Record{player("x", "神相", "老王", 1, 10)}},
		Dropped: 1,
	}
	return report, match
}
