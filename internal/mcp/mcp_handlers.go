package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/leaguestat/core"
	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

// rosterSummary is the compact form of one roster returned by build_report.
type rosterSummary struct {
	Team         string                   `json:"team"`
	Summary      schema.GroupStatistics   `json:"summary"`
	RoleGroups   []schema.GroupStatistics `json:"role_groups"`
	LeaderGroups []schema.GroupStatistics `json:"leader_groups"`
}

// reportSummary is the payload of build_report. Full views are left out
// since the workbook layout is meant for files, not for tool responses.
type reportSummary struct {
	Source      string        `json:"source"`
	DroppedRows int           `json:"dropped_rows"`
	Home        rosterSummary `json:"home"`
	Away        rosterSummary `json:"away"`
}

func summarizeRoster(r schema.RosterReport) rosterSummary {
	return rosterSummary{
		Team:         r.Team,
		Summary:      r.Summary,
		RoleGroups:   r.RoleGroups,
		LeaderGroups: r.LeaderGroups,
	}
}

// requestConfig clones the base config and applies the overrides shared by every tool.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	cfg.SourcePath = request.GetString("source_path", "")
	split := request.GetInt("split_line", contract.AutoSplitLine)
	if split != contract.AutoSplitLine && split < 1 {
		return nil, fmt.Errorf("split_line must be %d (auto) or at least 1 (received %d)", contract.AutoSplitLine, split)
	}
	cfg.SplitLine = split
	err := contract.RevalidateView(cfg,
		request.GetString("roster", ""),
		request.GetString("by", ""),
		request.GetString("home_name", ""),
		request.GetString("away_name", ""),
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *toolHandler) handleBuildReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid report parameters: %v", err)), nil
	}

	report, match, err := core.GetMatchReport(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	summary := reportSummary{
		Source:      match.Source,
		DroppedRows: match.Dropped,
		Home:        summarizeRoster(report.Home),
		Away:        summarizeRoster(report.Away),
	}
	jsonData, _ := json.MarshalIndent(summary, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGroupView(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid view parameters: %v", err)), nil
	}
	kind := schema.ViewKind(request.GetString("kind", string(schema.RankedView)))
	if kind != schema.RankedView && kind != schema.StatsView {
		return mcp.NewToolResultError(fmt.Sprintf("invalid view parameters: kind must be ranked or stats (received %q)", kind)), nil
	}

	view, err := core.GetGroupView(core.WithSuppressHeader(ctx), cfg, kind)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("view failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(view, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareRosters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid comparison parameters: %v", err)), nil
	}

	view, err := core.GetComparison(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(view, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
