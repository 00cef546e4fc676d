package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricHeadersAndKeys(t *testing.T) {
	assert.Len(t, AllMetrics, MetricCount)
	assert.Equal(t, "对玩家伤害", DamageToPlayers.Header())
	assert.Equal(t, "青灯焚骨", SpecialResourceA.Header())
	assert.Equal(t, "化羽", SpecialResourceB.Header())
	assert.Equal(t, "crowd_control", CrowdControl.Key())
	assert.Empty(t, Metric(-1).Header())
	assert.Empty(t, Metric(MetricCount).Key())

	m, ok := MetricByKey("healing")
	require.True(t, ok)
	assert.Equal(t, Healing, m)

	_, ok = MetricByKey("mana")
	assert.False(t, ok)
}

func TestRecordColumns(t *testing.T) {
	cols := RecordColumns()
	require.Len(t, cols, ColumnCount)
	assert.Equal(t, 16, ColumnCount)
	assert.Equal(t, "帮会名", cols[ColTeam])
	assert.Equal(t, "所在团长", cols[ColLeader])
	assert.Equal(t, "击败", cols[MetricColumn(Kills)])
	assert.Equal(t, "控制", cols[MetricColumn(CrowdControl)])
}

func TestGroupColumn(t *testing.T) {
	assert.Equal(t, ColRole, GroupColumn(ByRole))
	assert.Equal(t, ColLeader, GroupColumn(ByLeader))
	assert.Equal(t, ColTeam, GroupColumn(DimensionNone))
}

// TestPolicyFor tests the role policy table and its default.
func TestPolicyFor(t *testing.T) {
	assert.Equal(t, Healing, PolicyFor(HealerRole).RankMetric)
	assert.Equal(t, SpecialResourceA, PolicyFor(DotRole).RankMetric)
	assert.Equal(t, DamageToPlayers, PolicyFor("铁衣").RankMetric)
	assert.Equal(t, DamageToPlayers, PolicyFor("").RankMetric)
}

func TestVisualizedFor(t *testing.T) {
	healer := VisualizedFor(HealerRole)
	assert.Contains(t, healer, Healing)
	assert.Contains(t, healer, SpecialResourceB)
	assert.NotContains(t, healer, SpecialResourceA)

	dot := VisualizedFor(DotRole)
	assert.Contains(t, dot, SpecialResourceA)
	assert.NotContains(t, dot, Healing)

	other := VisualizedFor("碎梦")
	assert.Equal(t, BaseVisualizedMetrics, other)
	assert.NotContains(t, other, SupplyPoints)

	// Appending to the result must not leak into the shared base slice.
	_ = append(VisualizedFor("碎梦"), SupplyPoints)
	assert.Len(t, BaseVisualizedMetrics, 7)
}

func TestGroupStatisticsMeans(t *testing.T) {
	s := GroupStatistics{Label: "A", Count: 3, LevelSum: 240}
	s.Sums[DamageToPlayers] = 160

	assert.InDelta(t, 53.333333, s.Mean(DamageToPlayers), 1e-5)
	assert.InDelta(t, 80.0, s.LevelMean(), 1e-9)

	empty := GroupStatistics{Label: "empty"}
	assert.True(t, math.IsNaN(empty.Mean(Kills)))
	assert.True(t, math.IsNaN(empty.LevelMean()))
}

func TestGroupStatisticsMarshalJSON(t *testing.T) {
	t.Run("empty group encodes null means", func(t *testing.T) {
		data, err := json.Marshal(GroupStatistics{Label: "none"})
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Nil(t, decoded["level_mean"])
		means := decoded["means"].(map[string]any)
		assert.Contains(t, means, "kills")
		assert.Nil(t, means["kills"])
	})

	t.Run("non-empty group encodes values", func(t *testing.T) {
		s := GroupStatistics{Label: "A", Count: 2, LevelSum: 150}
		s.Sums[Kills] = 7
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, 75.0, decoded["level_mean"])
		assert.Equal(t, 7.0, decoded["sums"].(map[string]any)["kills"])
		assert.Equal(t, 3.5, decoded["means"].(map[string]any)["kills"])
	})
}

func TestRecordBars(t *testing.T) {
	var rb RecordBars
	assert.False(t, rb.Has(Kills))

	rb[Kills] = Bar{Value: 5, Max: 10}
	assert.True(t, rb.Has(Kills))
	assert.InDelta(t, 0.5, rb[Kills].Ratio(), 1e-9)
	assert.Zero(t, Bar{}.Ratio())

	data, err := json.Marshal(rb)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kills":{"value":5,"max":10}}`, string(data))
}

func TestRowKindString(t *testing.T) {
	assert.Equal(t, "data", DataRow.String())
	assert.Equal(t, "stats", StatsRow.String())
	assert.Equal(t, "unknown", RowKind(42).String())
}

func TestMatchReportViewsOrder(t *testing.T) {
	m := MatchReport{
		Home: RosterReport{
			LeaderRanking: View{Name: SheetHomeLeaderRanking},
			RoleRanking:   View{Name: SheetHomeRoleRanking},
			RoleStats:     View{Name: SheetHomeRoleStats},
			LeaderStats:   View{Name: SheetHomeLeaderStats},
		},
		Away: RosterReport{
			LeaderRanking: View{Name: SheetAwayLeaderRanking},
			RoleRanking:   View{Name: SheetAwayRoleRanking},
			RoleStats:     View{Name: SheetAwayRoleStats},
			LeaderStats:   View{Name: SheetAwayLeaderStats},
		},
		CombinedRoleRanking: View{Name: SheetCombinedRoles},
		Comparison:          View{Name: SheetComparison},
	}

	var names []string
	for _, v := range m.Views() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{
		"本帮团长排序", "本帮职业排序", "敌帮团长排序", "敌帮职业排序", "综合职业排序",
		"本帮职业统计", "本帮团长统计", "敌帮职业统计", "敌帮团长统计", "帮会对比",
	}, names)
}
