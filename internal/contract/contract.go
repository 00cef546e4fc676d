// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/leaguestat/schema"
)

// HistoryManager defines the interface for accessing the history store.
// This allows the persistence layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking report runs and the player rows they saw.
type HistoryStore interface {
	// BeginRun creates a new report run and returns its unique ID
	BeginRun(startTime time.Time, sourceFile string, configParams map[string]any) (int64, error)

	// EndRun updates the report run with completion data
	EndRun(runID int64, endTime time.Time, match *schema.MatchData) error

	// RecordPlayers stores every coerced record of a run
	RecordPlayers(runID int64, records []schema.Record) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllReportRuns returns every stored report run ordered by ID
	GetAllReportRuns() ([]schema.ReportRunRecord, error)

	// GetAllPlayerStats returns every stored player row ordered by run
	GetAllPlayerStats() ([]schema.PlayerStatsRecord, error)

	// Close closes the underlying connection
	Close() error
}
