package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/internal/iocache"
	"github.com/huangsam/leaguestat/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyBackendConfig loads and validates the history backend settings
// without opening the store.
func historyBackendConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Handle empty backend as NoneBackend
	backend := schema.NoneBackend
	if backendStr := viper.GetString("history-backend"); backendStr != "" {
		backend = schema.DatabaseBackend(backendStr)
	}
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetup loads minimal configuration and opens the history store.
// This is used by commands that read history without full shared setup.
func historySetup() error {
	if err := historyBackendConfig(); err != nil {
		return err
	}
	if err := iocache.InitHistory(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyBackendWrapper provides PreRunE for the commands that must not open
// the store, so clear and migrate work on a missing or outdated schema.
func historyBackendWrapper(_ *cobra.Command, _ []string) error {
	return historyBackendConfig()
}

// sqlitePath returns the SQLite file the history lives in.
func sqlitePath() string {
	if cfg.HistoryDBConnect != "" {
		return cfg.HistoryDBConnect
	}
	return contract.GetHistoryDBFilePath()
}

// historyCmd focused on report history management.
//
// Note: History subcommands use minimal initialization instead of the full
// sharedSetup used by the report commands. No export is read.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the history of report runs and exports",
	Long: `Manage the report history used for trend tracking across matches.

When --history-backend is set, every report run stores:
- Run metadata (timestamp, export path, roster names, duration, settings)
- One row per player with every metric

Supported backends: SQLite (default file in $HOME), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all history data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  leaguestat history status --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  leaguestat history export --history-backend sqlite --output-file league`,
}

// historyClearCmd clears the history data.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all report history",
	Long: `Delete all stored report runs and player rows.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  leaguestat history export --history-backend sqlite --output-file backup
  leaguestat history clear --history-backend sqlite`,
	PreRunE: historyBackendWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearHistory(cfg.HistoryBackend, sqlitePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show detailed information about the report history.

Displays:
- Backend type and connection status
- Total number of report runs stored
- Last and oldest run timestamps
- Total player rows across all runs
- Database table sizes

Examples:
  # Check the default SQLite history
  leaguestat history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetHistoryStore()
		if store == nil {
			contract.LogFatal("Failed to get history status", fmt.Errorf("history tracking is disabled; set --history-backend"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyExportCmd exports history data to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export report history to Parquet for BI tools and analytics",
	Long: `Export all stored report history to Parquet format.

Exports two datasets next to --output-file:
- <output-file>.report_runs.parquet - one row per report run
- <output-file>.player_stats.parquet - one row per player per run

Requires: --output-file parameter

Examples:
  # Export all data
  leaguestat history export --history-backend sqlite --output-file league

  # Use with DuckDB for analysis
  duckdb -c "SELECT player, SUM(damage_to_players) FROM 'league.player_stats.parquet' GROUP BY player"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  leaguestat history migrate --history-backend sqlite

  # Migrate to specific version
  leaguestat history migrate --history-backend sqlite --target-version 2

  # Rollback to initial state
  leaguestat history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyBackendWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
