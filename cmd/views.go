package cmd

import (
	"github.com/huangsam/leaguestat/core"
	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/spf13/cobra"
)

// runView returns a cobra Run function for a single-view executor.
func runView(exec core.ExecutorFunc, failure string) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := exec(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal(failure, err)
		}
	}
}

// leadersCmd shows the leader-grouped ranking.
var leadersCmd = &cobra.Command{
	Use:   "leaders <export.csv>",
	Short: "Rank the players of a roster within each leader group.",
	Long: `Group a roster by sub-team leader and rank each group by damage to players.

Groups appear in ascending leader order. Every group after the first is
preceded by a blank line and a repeated header.

Examples:
  # Leader ranking of the first roster
  leaguestat leaders match.csv

  # Both rosters as one table
  leaguestat leaders match.csv --roster both

  # Export the ranking for a spreadsheet
  leaguestat leaders match.csv --roster away --output csv --output-file away.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: viewSetupWrapper,
	Run:     runView(core.ExecuteLeaders, "Cannot rank leaders"),
}

// rolesCmd shows the role-grouped ranking.
var rolesCmd = &cobra.Command{
	Use:   "roles <export.csv>",
	Short: "Rank the players of a roster within each role group.",
	Long: `Group a roster by role and rank each group by its role metric.

Healers (素问) rank by healing, the dot role (九灵) by 青灯焚骨 and every
other role by damage to players.

Examples:
  # Role ranking of the second roster
  leaguestat roles match.csv --roster away

  # Combined role ranking as JSON
  leaguestat roles match.csv --roster both --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: viewSetupWrapper,
	Run:     runView(core.ExecuteRoles, "Cannot rank roles"),
}

// statsCmd shows per-group statistics.
var statsCmd = &cobra.Command{
	Use:   "stats <export.csv>",
	Short: "Summarize every role or leader group of a roster.",
	Long: `Print one section per group: a title, the group statistics and the ranked players.

Statistics hold the player count, the mean level and a total (and mean) per metric.

Examples:
  # Role statistics of the first roster
  leaguestat stats match.csv

  # Leader statistics of the second roster
  leaguestat stats match.csv --roster away --by leader`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: viewSetupWrapper,
	Run:     runView(core.ExecuteStats, "Cannot summarize groups"),
}

// compareCmd shows the roster comparison.
var compareCmd = &cobra.Command{
	Use:   "compare <export.csv>",
	Short: "Compare the totals of both rosters.",
	Long: `Print one row per roster with its player count and the total of every metric.

Examples:
  # Compare the rosters
  leaguestat compare match.csv --home-name 红队 --away-name 蓝队

  # Machine-readable comparison
  leaguestat compare match.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: viewSetupWrapper,
	Run:     runView(core.ExecuteCompare, "Cannot compare rosters"),
}

// topCmd shows the ungrouped ranking.
var topCmd = &cobra.Command{
	Use:   "top <export.csv>",
	Short: "Show the top players of a roster by damage to players.",
	Long: `Rank a roster without grouping and keep the first --limit players.

Examples:
  # Top 10 of the first roster
  leaguestat top match.csv

  # Top 20 across both rosters
  leaguestat top match.csv --roster both --limit 20`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: viewSetupWrapper,
	Run:     runView(core.ExecuteTop, "Cannot rank players"),
}
