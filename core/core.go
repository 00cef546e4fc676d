// Package core has core logic for grouping, ranking, aggregation and report assembly.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/internal/outwriter"
	"github.com/huangsam/leaguestat/internal/source"
	"github.com/huangsam/leaguestat/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error

// ExecuteReport builds the full match report and writes it in the configured format.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	start := time.Now()
	report, match, err := GetMatchReport(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	out := cfg
	if cfg.Output == schema.XLSXOut && cfg.OutputFile == "" {
		out = cfg.Clone()
		out.OutputFile = contract.DefaultReportFileName(start)
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteReport(report, match, out, duration)
}

// ExecuteLeaders writes the leader-grouped ranking of the selected roster.
func ExecuteLeaders(ctx context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return executeView(ctx, cfg, func(match *schema.MatchData) schema.View {
		return buildRankedFor(match, cfg.Roster, schema.ByLeader)
	})
}

// ExecuteRoles writes the role-grouped ranking of the selected roster.
func ExecuteRoles(ctx context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return executeView(ctx, cfg, func(match *schema.MatchData) schema.View {
		return buildRankedFor(match, cfg.Roster, schema.ByRole)
	})
}

// ExecuteStats writes the per-group statistics of the selected roster, grouped by cfg.Dimension.
func ExecuteStats(ctx context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return executeView(ctx, cfg, func(match *schema.MatchData) schema.View {
		view, _ := buildStatsFor(match, cfg.Roster, cfg.Dimension)
		return view
	})
}

// ExecuteCompare writes the two-row roster comparison.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return executeView(ctx, cfg, buildComparisonFor)
}

// ExecuteTop writes the ungrouped ranking of the selected roster, limited to cfg.ResultLimit.
func ExecuteTop(ctx context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return executeView(ctx, cfg, func(match *schema.MatchData) schema.View {
		return BuildTopView(schema.SheetTopPlayers, selectRecords(match, cfg.Roster), cfg.ResultLimit)
	})
}

// GetMatchReport loads the export, assembles every view and records the run in history.
// History failures are reported as warnings and never fail the report.
func GetMatchReport(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) (*schema.MatchReport, *schema.MatchData, error) {
	if !shouldSuppressHeader(ctx) {
		contract.LogHeader(cfg)
	}

	// --- 1. Read and split the export ---
	match, err := loadMatch(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// --- 2. Begin History Tracking (if configured) ---
	store := historyStore(mgr)
	if store != nil {
		runID, err := store.BeginRun(time.Now(), cfg.SourcePath, runConfigParams(cfg))
		if err != nil {
			contract.LogWarn("History tracking initialization failed", err)
		} else if runID > 0 {
			ctx = withRunID(ctx, runID)
		}
	}

	// --- 3. Assemble all views ---
	report := BuildMatchReport(match)

	// --- 4. Record players and finalize tracking ---
	recordHistory(ctx, store, match)

	return &report, match, nil
}

// GetGroupView loads the export and returns the ranked or statistics view of one roster.
func GetGroupView(ctx context.Context, cfg *contract.Config, kind schema.ViewKind) (schema.View, error) {
	match, err := loadMatch(ctx, cfg)
	if err != nil {
		return schema.View{}, err
	}
	if kind == schema.StatsView {
		view, _ := buildStatsFor(match, cfg.Roster, cfg.Dimension)
		return view, nil
	}
	return buildRankedFor(match, cfg.Roster, cfg.Dimension), nil
}

// GetComparison loads the export and returns the roster comparison view.
func GetComparison(ctx context.Context, cfg *contract.Config) (schema.View, error) {
	match, err := loadMatch(ctx, cfg)
	if err != nil {
		return schema.View{}, err
	}
	return buildComparisonFor(match), nil
}

// executeView runs the common load, build and write steps of the view commands.
func executeView(ctx context.Context, cfg *contract.Config, build func(*schema.MatchData) schema.View) error {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		contract.LogHeader(cfg)
	}
	match, err := loadMatch(ctx, cfg)
	if err != nil {
		return err
	}
	view := build(match)
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteView(view, cfg, duration)
}

// loadMatch reads the configured export into two coerced rosters.
func loadMatch(ctx context.Context, cfg *contract.Config) (*schema.MatchData, error) {
	if cfg.SourcePath == "" {
		return nil, contract.ErrMissingInput
	}
	raw, err := source.ReadFile(cfg.SourcePath, source.Options{SplitLine: cfg.SplitLine})
	if err != nil {
		return nil, err
	}

	match := &schema.MatchData{
		Source:  raw.Source,
		Home:    CoerceRoster(raw.Home, cfg.HomeName),
		Away:    CoerceRoster(raw.Away, cfg.AwayName),
		Dropped: raw.Dropped,
	}
	if match.Dropped > 0 && !shouldSuppressHeader(ctx) {
		contract.LogWarn("Skipped malformed rows", fmt.Errorf("%d rows have fewer than %d cells", match.Dropped, source.MinCells))
	}
	return match, nil
}

// recordHistory stores the players of a report run and finalizes the run.
func recordHistory(ctx context.Context, store contract.HistoryStore, match *schema.MatchData) {
	runID, ok := getRunID(ctx)
	if store == nil || !ok {
		return
	}
	if err := store.RecordPlayers(runID, CombineRosters(match.Home, match.Away)); err != nil {
		contract.LogWarn("Failed to record player history", err)
	}
	if err := store.EndRun(runID, time.Now(), match); err != nil {
		contract.LogWarn("Failed to finalize history tracking", err)
	}
}

// historyStore returns the configured history store, or nil when tracking is off.
func historyStore(mgr contract.HistoryManager) contract.HistoryStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetHistoryStore()
}

// runConfigParams captures the settings of a report run for the history store.
func runConfigParams(cfg *contract.Config) map[string]any {
	return map[string]any{
		"output":     string(cfg.Output),
		"home_name":  cfg.HomeName,
		"away_name":  cfg.AwayName,
		"split_line": cfg.SplitLine,
	}
}

// selectRecords returns the records of the roster picked by sel.
func selectRecords(match *schema.MatchData, sel schema.RosterSelector) []schema.Record {
	switch sel {
	case schema.AwayRoster:
		return match.Away.Records
	case schema.BothRoster:
		return CombineRosters(match.Home, match.Away)
	default:
		return match.Home.Records
	}
}

func buildRankedFor(match *schema.MatchData, sel schema.RosterSelector, dim schema.Dimension) schema.View {
	return BuildRankedView(schema.SheetsFor(sel).Ranking(dim), selectRecords(match, sel), dim)
}

func buildStatsFor(match *schema.MatchData, sel schema.RosterSelector, dim schema.Dimension) (schema.View, []schema.GroupStatistics) {
	return BuildStatsView(schema.SheetsFor(sel).Stats(dim), selectRecords(match, sel), dim)
}

func buildComparisonFor(match *schema.MatchData) schema.View {
	return BuildComparisonView(schema.SheetComparison, SummarizeRoster(match.Home), SummarizeRoster(match.Away))
}
