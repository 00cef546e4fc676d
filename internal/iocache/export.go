package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/internal/parquet"
)

// ExecuteHistoryExport exports the global history store to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	return ExportHistory(Manager.GetHistoryStore(), outputFile)
}

// ExportHistory writes every report run and player row of store to
// <outputFile>.report_runs.parquet and <outputFile>.player_stats.parquet.
func ExportHistory(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history tracking is disabled; set --history-backend")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no history data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total report runs: %d\n", status.TotalRuns)
	fmt.Printf("Total player records: %d\n", status.TotalPlayerRows)

	runs, err := store.GetAllReportRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve report runs: %w", err)
	}
	players, err := store.GetAllPlayerStats()
	if err != nil {
		return fmt.Errorf("failed to retrieve player stats: %w", err)
	}

	parquetRuns := parquet.ReportRunsFromRecords(runs)
	runsFile := outputFile + ".report_runs.parquet"
	if err := parquet.WriteReportRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write report runs: %w", err)
	}
	fmt.Printf("Exported %d report runs to: %s\n", len(parquetRuns), runsFile)

	parquetPlayers := parquet.PlayerRowsFromStats(players)
	playersFile := outputFile + ".player_stats.parquet"
	if err := parquet.WritePlayerRowsParquet(parquetPlayers, playersFile); err != nil {
		return fmt.Errorf("failed to write player stats: %w", err)
	}
	fmt.Printf("Exported %d player records to: %s\n", len(parquetPlayers), playersFile)

	fmt.Println("\nExport complete! The Parquet files can be used with DuckDB, Pandas (via pyarrow) or Apache Spark.")
	return nil
}
