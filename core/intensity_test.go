package core

import (
	"testing"

	"github.com/huangsam/leaguestat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMaxima(t *testing.T) {
	records := []schema.Record{
		record("a", "X", "L", map[schema.Metric]float64{schema.Kills: 3, schema.Healing: 10}),
		record("b", "X", "L", map[schema.Metric]float64{schema.Kills: 5}),
	}
	maxima := GroupMaxima(records)
	assert.Equal(t, 5.0, maxima[schema.Kills])
	assert.Equal(t, 10.0, maxima[schema.Healing])
	assert.Zero(t, maxima[schema.Assists])
	assert.Equal(t, schema.MetricValues{}, GroupMaxima(nil))
}

func TestScales_Bounds(t *testing.T) {
	records := []schema.Record{
		damage("a", "铁衣", "L", 100),
		damage("b", "铁衣", "L", 40),
		damage("c", "铁衣", "L", 0),
	}
	bars := Scales(records)
	require.Len(t, bars, 3)

	assert.Equal(t, schema.Bar{Value: 100, Max: 100}, bars[0][schema.DamageToPlayers], "the maximum gets the full bar")
	assert.Equal(t, 0.4, bars[1][schema.DamageToPlayers].Ratio())
	assert.False(t, bars[2].Has(schema.DamageToPlayers), "zero values get no bar")
	for _, rb := range bars {
		for _, m := range schema.AllMetrics {
			if rb.Has(m) {
				assert.LessOrEqual(t, rb[m].Value, rb[m].Max)
				assert.GreaterOrEqual(t, rb[m].Value, 0.0)
			}
		}
	}
}

func TestScales_SuppressedWhenMaxIsZero(t *testing.T) {
	records := []schema.Record{
		damage("a", "铁衣", "L", 10),
		damage("b", "铁衣", "L", 20),
	}
	for _, rb := range Scales(records) {
		assert.False(t, rb.Has(schema.Kills))
		assert.False(t, rb.Has(schema.CrowdControl))
	}
}

func TestScales_RoleConditional(t *testing.T) {
	records := []schema.Record{
		record("healer", schema.HealerRole, "L", map[schema.Metric]float64{
			schema.Healing: 100, schema.SpecialResourceB: 3, schema.SpecialResourceA: 2,
		}),
		record("tank", "铁衣", "L", map[schema.Metric]float64{
			schema.Healing: 50, schema.SpecialResourceA: 4,
		}),
		record("dot", schema.DotRole, "L", map[schema.Metric]float64{
			schema.SpecialResourceA: 8, schema.Healing: 20,
		}),
	}
	bars := Scales(records)

	assert.True(t, bars[0].Has(schema.Healing))
	assert.True(t, bars[0].Has(schema.SpecialResourceB))
	assert.False(t, bars[0].Has(schema.SpecialResourceA))

	assert.False(t, bars[1].Has(schema.Healing), "non-healers never get a healing bar")
	assert.False(t, bars[1].Has(schema.SpecialResourceA))

	assert.True(t, bars[2].Has(schema.SpecialResourceA))
	assert.False(t, bars[2].Has(schema.Healing))
	// The maximum spans every member whatever its role.
	assert.Equal(t, 8.0, bars[2][schema.SpecialResourceA].Max)
	assert.Equal(t, 100.0, bars[0][schema.Healing].Max)
}

func TestScales_SupplyPointsNeverVisualized(t *testing.T) {
	records := []schema.Record{
		record("a", "铁衣", "L", map[schema.Metric]float64{schema.SupplyPoints: 5}),
	}
	assert.False(t, Scales(records)[0].Has(schema.SupplyPoints))
}
