// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport writes the full match report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.MatchReport, match *schema.MatchData, cfg *contract.Config, duration time.Duration) error {
	return WriteReportResults(report, match, cfg, duration)
}

// WriteView writes a single view using the configured output format.
func (ow *OutWriter) WriteView(view schema.View, cfg *contract.Config, duration time.Duration) error {
	return WriteViewResults(view, cfg, duration)
}
