package cmd

import (
	"github.com/huangsam/leaguestat/core"
	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd builds the full match workbook.
var reportCmd = &cobra.Command{
	Use:   "report <export.csv>",
	Short: "Build the full match workbook from a league export.",
	Long: `Split a two-roster league export and build every view of the match.

The workbook holds ten sheets in a fixed order:
- Leader and role rankings of each roster
- A role ranking of both rosters combined
- Role and leader statistics of each roster
- A two-row comparison of the rosters

Every ranked row carries data bars scaled to the maximum of its group.
Healers are ranked by healing and the dot role by its special resource.

The workbook is the default output. Use --output to print the same views
as text, CSV, JSON or Parquet instead.

Examples:
  # Build the workbook with a timestamped name
  leaguestat report match.csv

  # Name the rosters and pick the file
  leaguestat report match.csv --home-name 红队 --away-name 蓝队 --output-file week12.xlsx

  # The separator line is not blank in this export
  leaguestat report match.csv --split-line 31

  # Record the run for later trend queries
  leaguestat report match.csv --history-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: reportSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot build report", err)
		}
	},
}
