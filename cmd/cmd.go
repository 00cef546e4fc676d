// Package cmd defines the command-line interface for leaguestat.
package cmd

import (
	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", "", "Output format: text or csv or json or parquet or xlsx (report defaults to xlsx)")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("home-name", "本帮", "Label of the roster listed first in the export")
	rootCmd.PersistentFlags().String("away-name", "敌帮", "Label of the roster listed after the blank line")
	rootCmd.PersistentFlags().Int("split-line", contract.AutoSplitLine, "0-based line of the blank separator (-1 = auto-detect)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("history-backend", "", "History tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname?parseTime=true)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored bars and titles in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind the roster selector shared by the view commands
	for _, c := range []*cobra.Command{leadersCmd, rolesCmd, statsCmd, topCmd} {
		c.Flags().String("roster", "home", "Roster to show: home or away or both")
	}
	statsCmd.Flags().String("by", "role", "Grouping key: role or leader")
	topCmd.Flags().IntP("limit", "l", contract.DefaultResultLimit, "Number of players to display")

	// Viper keeps one value per key, so view flags are bound when the command runs.
	for _, c := range []*cobra.Command{leadersCmd, rolesCmd, statsCmd, topCmd} {
		c.PreRunE = bindThenSetup(c.PreRunE)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}

// bindThenSetup binds the local flags of the running command before setup.
func bindThenSetup(setup func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return setup(cmd, args)
	}
}
