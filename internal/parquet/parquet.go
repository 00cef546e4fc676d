// Package parquet provides data structures and functions for exporting leaguestat
// player and run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/leaguestat/schema"
	"github.com/parquet-go/parquet-go"
)

// ReportRun represents a single report run with metadata.
// This struct maps to the leaguestat_report_runs database table.
type ReportRun struct {
	// RunID is the unique identifier for this report run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	SourceFile  string `parquet:"source_file,snappy"`
	HomeTeam    string `parquet:"home_team,snappy"`
	AwayTeam    string `parquet:"away_team,snappy"`
	HomePlayers int32  `parquet:"home_players,snappy"`
	AwayPlayers int32  `parquet:"away_players,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// PlayerRow is one participant of one roster, flattened to a column per metric.
// This struct maps to the leaguestat_player_stats database table.
type PlayerRow struct {
	// RunID references the parent report run, 0 for rows not tied to a run
	RunID int64 `parquet:"run_id,snappy"`

	Team   string `parquet:"team,snappy"`
	Player string `parquet:"player,snappy"`
	Level  int32  `parquet:"level,snappy"`
	Role   string `parquet:"role,snappy"`
	Leader string `parquet:"leader,snappy"`

	Kills              float64 `parquet:"kills,snappy"`
	Assists            float64 `parquet:"assists,snappy"`
	SupplyPoints       float64 `parquet:"supply_points,snappy"`
	DamageToPlayers    float64 `parquet:"damage_to_players,snappy"`
	DamageToStructures float64 `parquet:"damage_to_structures,snappy"`
	Healing            float64 `parquet:"healing,snappy"`
	DamageTaken        float64 `parquet:"damage_taken,snappy"`
	Incapacitations    float64 `parquet:"incapacitations,snappy"`
	SpecialResourceA   float64 `parquet:"special_resource_a,snappy"`
	SpecialResourceB   float64 `parquet:"special_resource_b,snappy"`
	CrowdControl       float64 `parquet:"crowd_control,snappy"`
}

// NewPlayerRow flattens a stored player record.
func NewPlayerRow(r schema.PlayerStatsRecord) PlayerRow {
	m := r.Metrics
	return PlayerRow{
		RunID:              r.RunID,
		Team:               r.Team,
		Player:             r.Player,
		Level:              r.Level,
		Role:               r.Role,
		Leader:             r.Leader,
		Kills:              m[schema.Kills],
		Assists:            m[schema.Assists],
		SupplyPoints:       m[schema.SupplyPoints],
		DamageToPlayers:    m[schema.DamageToPlayers],
		DamageToStructures: m[schema.DamageToStructures],
		Healing:            m[schema.Healing],
		DamageTaken:        m[schema.DamageTaken],
		Incapacitations:    m[schema.Incapacitations],
		SpecialResourceA:   m[schema.SpecialResourceA],
		SpecialResourceB:   m[schema.SpecialResourceB],
		CrowdControl:       m[schema.CrowdControl],
	}
}

// PlayerRowsFromRecords flattens roster records that are not tied to a stored run.
func PlayerRowsFromRecords(records []schema.Record) []PlayerRow {
	rows := make([]PlayerRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, NewPlayerRow(schema.NewPlayerStatsRecord(0, r)))
	}
	return rows
}

// PlayerRowsFromStats flattens stored player records.
func PlayerRowsFromStats(records []schema.PlayerStatsRecord) []PlayerRow {
	rows := make([]PlayerRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, NewPlayerRow(r))
	}
	return rows
}

// ReportRunsFromRecords converts stored run records.
func ReportRunsFromRecords(records []schema.ReportRunRecord) []ReportRun {
	runs := make([]ReportRun, 0, len(records))
	for _, r := range records {
		runs = append(runs, ReportRun{
			RunID:         r.RunID,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			RunDurationMs: r.RunDurationMs,
			SourceFile:    r.SourceFile,
			HomeTeam:      r.HomeTeam,
			AwayTeam:      r.AwayTeam,
			HomePlayers:   r.HomePlayers,
			AwayPlayers:   r.AwayPlayers,
			ConfigParams:  r.ConfigParams,
		})
	}
	return runs
}

// WriteReportRunsParquet writes a slice of ReportRun structs to a Parquet file.
func WriteReportRunsParquet(data []ReportRun, outputPath string) error {
	return writeFile(data, outputPath)
}

// WritePlayerRowsParquet writes a slice of PlayerRow structs to a Parquet file.
func WritePlayerRowsParquet(data []PlayerRow, outputPath string) error {
	return writeFile(data, outputPath)
}

// WritePlayerRows writes player rows to w.
func WritePlayerRows(w io.Writer, data []PlayerRow) error {
	return write(w, data)
}

func writeFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return write(file, data)
}

// write infers the schema from the struct tags of T.
func write[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
