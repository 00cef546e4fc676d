package core

import "github.com/huangsam/leaguestat/schema"

// record builds a record with the given metrics; unset metrics stay 0.
func record(player, role, leader string, metrics map[schema.Metric]float64) schema.Record {
	r := schema.Record{Team: "本帮", Player: player, Level: 80, Role: role, Leader: leader}
	for m, v := range metrics {
		r.Metrics[m] = v
	}
	return r
}

// damage builds a record ranked by damage to players.
func damage(player, role, leader string, dmg float64) schema.Record {
	return record(player, role, leader, map[schema.Metric]float64{schema.DamageToPlayers: dmg})
}

func players(records []schema.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Player)
	}
	return out
}

func rowKinds(view schema.View) []schema.RowKind {
	out := make([]schema.RowKind, 0, len(view.Rows))
	for _, r := range view.Rows {
		out = append(out, r.Kind)
	}
	return out
}

func dataPlayers(view schema.View) []string {
	var out []string
	for _, r := range view.Rows {
		if r.Kind == schema.DataRow {
			out = append(out, r.Record.Player)
		}
	}
	return out
}
