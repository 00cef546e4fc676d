package core

import "github.com/huangsam/leaguestat/schema"

// Span is a half-open index range [Start, End) of a sorted record sequence.
type Span struct {
	Start int
	End   int
}

// Len returns the number of records in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Group is a maximal run of sorted records sharing one grouping key.
type Group struct {
	Key     string
	Span    Span
	Records []schema.Record // sorted[Span.Start:Span.End]
}

// Partition splits an already sorted sequence into maximal runs of equal key.
// It has no state beyond its arguments and returns the boundaries only.
func Partition(sorted []schema.Record, key func(schema.Record) string) []Span {
	var spans []Span
	for start := 0; start < len(sorted); {
		k := key(sorted[start])
		end := start + 1
		for end < len(sorted) && key(sorted[end]) == k {
			end++
		}
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}

// GroupRecords sorts records for dim and partitions them into ordered groups.
// Groups appear in ascending key order; each group is ranked by RankKey descending.
// Empty input yields no groups. A blank key forms a group of its own.
func GroupRecords(records []schema.Record, dim schema.Dimension) []Group {
	sorted := sortForGrouping(records, dim)
	key := func(r schema.Record) string { return GroupKey(r, dim) }

	spans := Partition(sorted, key)
	groups := make([]Group, 0, len(spans))
	for _, sp := range spans {
		groups = append(groups, Group{
			Key:     key(sorted[sp.Start]),
			Span:    sp,
			Records: sorted[sp.Start:sp.End:sp.End],
		})
	}
	return groups
}
