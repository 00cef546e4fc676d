package schema

import (
	"encoding/json"
	"math"
)

// Bar is the intensity of one metric value relative to its group maximum.
// The zero Bar means "no bar".
type Bar struct {
	Value float64 `json:"value"` // magnitude on the 0..Max scale
	Max   float64 `json:"max"`   // group-local maximum
}

// Ratio returns Value/Max in [0, 1].
func (b Bar) Ratio() float64 {
	if b.Max <= 0 {
		return 0
	}
	return b.Value / b.Max
}

// RecordBars holds the optional bar of every metric for one record.
type RecordBars [MetricCount]Bar

// Has reports whether metric m carries a bar.
func (rb RecordBars) Has(m Metric) bool {
	return rb[m].Max > 0
}

// MarshalJSON emits only the metrics that carry a bar, keyed by metric key.
func (rb RecordBars) MarshalJSON() ([]byte, error) {
	out := make(map[string]Bar)
	for _, m := range AllMetrics {
		if rb.Has(m) {
			out[m.Key()] = rb[m]
		}
	}
	return json.Marshal(out)
}

// RowKind classifies a row handed to a renderer.
type RowKind int

// All row kinds.
const (
	DataRow RowKind = iota
	SeparatorRow
	HeaderRow
	TitleRow
	StatsRow
)

var rowKindNames = [...]string{"data", "separator", "header", "title", "stats"}

// String implements fmt.Stringer.
func (k RowKind) String() string {
	if k < 0 || int(k) >= len(rowKindNames) {
		return "unknown"
	}
	return rowKindNames[k]
}

// MarshalJSON encodes the kind by name.
func (k RowKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Row is one line of a report view.
type Row struct {
	Kind   RowKind          `json:"kind"`
	Group  string           `json:"group,omitempty"`  // grouping key the row belongs to
	Record *Record          `json:"record,omitempty"` // DataRow only
	Bars   RecordBars       `json:"bars"`             // DataRow only
	Cells  []string         `json:"cells,omitempty"`  // HeaderRow, TitleRow and StatsRow
	Stats  *GroupStatistics `json:"stats,omitempty"`  // StatsRow only
}

// View is an ordered sequence of rows under a fixed set of columns.
type View struct {
	Name      string    `json:"name"`
	Kind      ViewKind  `json:"kind"`
	Dimension Dimension `json:"dimension"`
	Columns   []string  `json:"columns"`
	Rows      []Row     `json:"rows"`
}

// DataRows returns the number of data rows in the view.
func (v View) DataRows() int {
	n := 0
	for _, r := range v.Rows {
		if r.Kind == DataRow {
			n++
		}
	}
	return n
}

// GroupStatistics is the summary of one group or one whole roster.
type GroupStatistics struct {
	Label    string
	Count    int
	LevelSum float64
	Sums     MetricValues
}

// Mean returns the mean of metric m, or NaN when the group is empty.
func (s GroupStatistics) Mean(m Metric) float64 {
	if s.Count == 0 {
		return math.NaN()
	}
	return s.Sums[m] / float64(s.Count)
}

// LevelMean returns the mean level, or NaN when the group is empty.
func (s GroupStatistics) LevelMean() float64 {
	if s.Count == 0 {
		return math.NaN()
	}
	return s.LevelSum / float64(s.Count)
}

type groupStatisticsJSON struct {
	Label     string              `json:"label"`
	Count     int                 `json:"count"`
	LevelMean *float64            `json:"level_mean"`
	Sums      map[string]float64  `json:"sums"`
	Means     map[string]*float64 `json:"means"`
}

// MarshalJSON encodes means as null for an empty group.
func (s GroupStatistics) MarshalJSON() ([]byte, error) {
	out := groupStatisticsJSON{
		Label: s.Label,
		Count: s.Count,
		Sums:  make(map[string]float64, MetricCount),
		Means: make(map[string]*float64, MetricCount),
	}
	if s.Count > 0 {
		lm := s.LevelMean()
		out.LevelMean = &lm
	}
	for _, m := range AllMetrics {
		out.Sums[m.Key()] = s.Sums[m]
		if s.Count > 0 {
			mean := s.Mean(m)
			out.Means[m.Key()] = &mean
		} else {
			out.Means[m.Key()] = nil
		}
	}
	return json.Marshal(out)
}

// RosterReport holds every view derived from a single roster.
type RosterReport struct {
	Team          string            `json:"team"`
	LeaderRanking View              `json:"leader_ranking"`
	RoleRanking   View              `json:"role_ranking"`
	RoleStats     View              `json:"role_stats"`
	LeaderStats   View              `json:"leader_stats"`
	RoleGroups    []GroupStatistics `json:"role_groups"`
	LeaderGroups  []GroupStatistics `json:"leader_groups"`
	Summary       GroupStatistics   `json:"summary"`
}

// MatchReport holds the views of both rosters plus the cross-roster views.
type MatchReport struct {
	Home                RosterReport `json:"home"`
	Away                RosterReport `json:"away"`
	CombinedRoleRanking View         `json:"combined_role_ranking"`
	Comparison          View         `json:"comparison"`
}

// Views returns every view in workbook order.
func (m MatchReport) Views() []View {
	return []View{
		m.Home.LeaderRanking,
		m.Home.RoleRanking,
		m.Away.LeaderRanking,
		m.Away.RoleRanking,
		m.CombinedRoleRanking,
		m.Home.RoleStats,
		m.Home.LeaderStats,
		m.Away.RoleStats,
		m.Away.LeaderStats,
		m.Comparison,
	}
}
