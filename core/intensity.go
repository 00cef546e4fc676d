package core

import "github.com/huangsam/leaguestat/schema"

// GroupMaxima returns the largest value of every metric among records.
func GroupMaxima(records []schema.Record) schema.MetricValues {
	var maxima schema.MetricValues
	for _, r := range records {
		for _, m := range schema.AllMetrics {
			maxima[m] = max(maxima[m], r.Metrics[m])
		}
	}
	return maxima
}

// Scales returns the intensity bars of every record of one group, index-aligned
// with records. A record gets a bar for metric m only when m is visualized for
// its own role, its value is positive, and the group maximum of m is positive.
// The maximum is taken over all members of the group whatever their role.
func Scales(records []schema.Record) []schema.RecordBars {
	maxima := GroupMaxima(records)
	bars := make([]schema.RecordBars, len(records))
	for i, r := range records {
		for _, m := range schema.VisualizedFor(r.Role) {
			v := r.Metrics[m]
			if maxima[m] <= 0 || v <= 0 {
				continue
			}
			bars[i][m] = schema.Bar{Value: v, Max: maxima[m]}
		}
	}
	return bars
}
