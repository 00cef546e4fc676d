package schema

import "time"

// ReportRunRecord represents a row from the leaguestat_report_runs table.
type ReportRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	SourceFile    string
	HomeTeam      string
	AwayTeam      string
	HomePlayers   int32
	AwayPlayers   int32
	ConfigParams  *string
}

// PlayerStatsRecord represents a row from the leaguestat_player_stats table.
type PlayerStatsRecord struct {
	RunID   int64
	Team    string
	Player  string
	Level   int32
	Role    string
	Leader  string
	Metrics MetricValues
}

// NewPlayerStatsRecord converts a roster record into its stored form.
func NewPlayerStatsRecord(runID int64, r Record) PlayerStatsRecord {
	return PlayerStatsRecord{
		RunID:   runID,
		Team:    r.Team,
		Player:  r.Player,
		Level:   int32(r.Level),
		Role:    r.Role,
		Leader:  r.Leader,
		Metrics: r.Metrics,
	}
}
