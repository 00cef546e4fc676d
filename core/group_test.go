package core

import (
	"slices"
	"testing"

	"github.com/huangsam/leaguestat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	key := func(r schema.Record) string { return r.Leader }
	sorted := []schema.Record{
		damage("a", "x", "A", 1),
		damage("b", "x", "A", 1),
		damage("c", "x", "B", 1),
		damage("d", "x", "C", 1),
		damage("e", "x", "C", 1),
	}

	spans := Partition(sorted, key)
	assert.Equal(t, []Span{{0, 2}, {2, 3}, {3, 5}}, spans)
	assert.Equal(t, 2, spans[0].Len())
	assert.Empty(t, Partition(nil, key))
}

func TestGroupRecords_Empty(t *testing.T) {
	assert.Empty(t, GroupRecords(nil, schema.ByRole))
}

func TestGroupRecords_OrderAndStability(t *testing.T) {
	records := []schema.Record{
		damage("p1", "碎梦", "L2", 10),
		damage("p2", "铁衣", "L1", 50),
		damage("p3", "碎梦", "L1", 10),
		damage("p4", "铁衣", "L2", 50),
		damage("p5", "碎梦", "L2", 30),
	}

	groups := GroupRecords(records, schema.ByRole)
	require.Len(t, groups, 2)

	keys := []string{groups[0].Key, groups[1].Key}
	assert.True(t, slices.IsSorted(keys), "groups appear in ascending key order")
	assert.Equal(t, []string{"碎梦", "铁衣"}, keys)

	// Equal rank keys keep their input order.
	assert.Equal(t, []string{"p5", "p1", "p3"}, players(groups[0].Records))
	assert.Equal(t, []string{"p2", "p4"}, players(groups[1].Records))
	assert.Equal(t, Span{Start: 3, End: 5}, groups[1].Span)
}

func TestGroupRecords_HealerByRole(t *testing.T) {
	var records []schema.Record
	for i, h := range []float64{10, 50, 30} {
		records = append(records, record(string(rune('a'+i)), schema.HealerRole, "L", map[schema.Metric]float64{
			schema.Healing:         h,
			schema.DamageToPlayers: 100 - h,
		}))
	}

	groups := GroupRecords(records, schema.ByRole)
	require.Len(t, groups, 1)
	var healing []float64
	for _, r := range groups[0].Records {
		healing = append(healing, r.Value(schema.Healing))
	}
	assert.Equal(t, []float64{50, 30, 10}, healing)
}

func TestGroupRecords_DotByRole(t *testing.T) {
	records := []schema.Record{
		record("a", schema.DotRole, "L", map[schema.Metric]float64{schema.SpecialResourceA: 1, schema.DamageToPlayers: 90}),
		record("b", schema.DotRole, "L", map[schema.Metric]float64{schema.SpecialResourceA: 9, schema.DamageToPlayers: 10}),
	}
	groups := GroupRecords(records, schema.ByRole)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"b", "a"}, players(groups[0].Records))
}

func TestGroupRecords_LeaderIgnoresRole(t *testing.T) {
	records := []schema.Record{
		record("healer", schema.HealerRole, "A", map[schema.Metric]float64{schema.DamageToPlayers: 5, schema.Healing: 100}),
		damage("tank", "铁衣", "A", 20),
	}
	groups := GroupRecords(records, schema.ByLeader)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"tank", "healer"}, players(groups[0].Records))
}

func TestGroupRecords_BlankKeyIsAGroup(t *testing.T) {
	records := []schema.Record{
		damage("a", "铁衣", "L1", 1),
		damage("b", "铁衣", "", 2),
	}
	groups := GroupRecords(records, schema.ByLeader)
	require.Len(t, groups, 2)
	assert.Empty(t, groups[0].Key)
	assert.Equal(t, []string{"b"}, players(groups[0].Records))
}

func TestGroupRecords_DoesNotMutateInput(t *testing.T) {
	records := []schema.Record{
		damage("a", "Y", "L", 1),
		damage("b", "X", "L", 2),
	}
	groups := GroupRecords(records, schema.ByRole)
	groups[0].Records[0].Player = "changed"
	assert.Equal(t, []string{"a", "b"}, players(records))
}
