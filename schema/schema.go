// Package schema has models, constants and lookup tables for all parts of leaguestat.
package schema

import "encoding/json"

// Metric identifies one numeric column of the league export.
type Metric int

// Metrics in the positional order of the export.
const (
	Kills Metric = iota
	Assists
	SupplyPoints
	DamageToPlayers
	DamageToStructures
	Healing
	DamageTaken
	Incapacitations
	SpecialResourceA // 青灯焚骨, ranked and visualized for the dot role
	SpecialResourceB // 化羽, visualized for the healer role
	CrowdControl

	MetricCount int = iota
)

// AllMetrics lists every metric in column order.
var AllMetrics = []Metric{
	Kills, Assists, SupplyPoints, DamageToPlayers, DamageToStructures, Healing,
	DamageTaken, Incapacitations, SpecialResourceA, SpecialResourceB, CrowdControl,
}

var metricHeaders = [MetricCount]string{
	"击败", "助攻", "战备资源", "对玩家伤害", "对建筑伤害", "治疗值",
	"承受伤害", "重伤", "青灯焚骨", "化羽", "控制",
}

var metricKeys = [MetricCount]string{
	"kills", "assists", "supply_points", "damage_to_players", "damage_to_structures", "healing",
	"damage_taken", "incapacitations", "special_resource_a", "special_resource_b", "crowd_control",
}

// Header returns the column header used in the export and in rendered views.
func (m Metric) Header() string {
	if m < 0 || int(m) >= MetricCount {
		return ""
	}
	return metricHeaders[m]
}

// Key returns the snake_case identifier used in JSON, CSV and database columns.
func (m Metric) Key() string {
	if m < 0 || int(m) >= MetricCount {
		return ""
	}
	return metricKeys[m]
}

// String implements fmt.Stringer.
func (m Metric) String() string {
	return m.Key()
}

// MetricByKey resolves a metric from its snake_case key.
func MetricByKey(key string) (Metric, bool) {
	for i, k := range metricKeys {
		if k == key {
			return Metric(i), true
		}
	}
	return 0, false
}

// MetricValues holds one value per metric, indexed by Metric.
type MetricValues [MetricCount]float64

// Get returns the value for metric m.
func (v MetricValues) Get(m Metric) float64 {
	return v[m]
}

// MarshalJSON encodes the values as an object keyed by metric key.
func (v MetricValues) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, MetricCount)
	for _, m := range AllMetrics {
		out[m.Key()] = v[m]
	}
	return json.Marshal(out)
}

// Record is one participant's performance in one roster.
type Record struct {
	Team    string       `json:"team"`    // Roster label, injected by the reader
	Player  string       `json:"player"`  // Player name, not unique across rosters
	Level   int          `json:"level"`   // Character level (>= 0)
	Role    string       `json:"role"`    // Functional class, e.g. 素问
	Leader  string       `json:"leader"`  // Sub-team leader
	Metrics MetricValues `json:"metrics"` // Numeric metrics, all >= 0
}

// Value returns the record's value for metric m.
func (r Record) Value(m Metric) float64 {
	return r.Metrics[m]
}

// Column positions shared by the export and every record-shaped view.
const (
	ColTeam = iota
	ColPlayer
	ColLevel
	ColRole
	ColLeader
	ColFirstMetric

	ColumnCount = ColFirstMetric + MetricCount
)

// MetricColumn returns the column index of metric m.
func MetricColumn(m Metric) int {
	return ColFirstMetric + int(m)
}

// RecordColumns returns the 16 column headers of a record-shaped view.
func RecordColumns() []string {
	cols := make([]string, 0, ColumnCount)
	cols = append(cols, "帮会名", "玩家", "等级", "职业", "所在团长")
	for _, m := range AllMetrics {
		cols = append(cols, m.Header())
	}
	return cols
}

// GroupColumn returns the column that carries the grouping key for dim.
func GroupColumn(dim Dimension) int {
	switch dim {
	case ByRole:
		return ColRole
	case ByLeader:
		return ColLeader
	default:
		return ColTeam
	}
}

// RosterData is one coerced roster ready for assembly.
type RosterData struct {
	Team    string
	Records []Record
}

// MatchData holds both rosters read from a single export.
type MatchData struct {
	Source  string     // Path of the export, empty for in-memory readers
	Home    RosterData // Roster listed first in the export
	Away    RosterData // Roster listed after the blank separator line
	Dropped int        // Rows skipped as structurally invalid
}
