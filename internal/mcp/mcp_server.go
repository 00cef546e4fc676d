// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Leaguestat MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Leaguestat Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: build_report ---
	s.AddTool(mcp.NewTool("build_report",
		mcp.WithDescription("Build the full match report of a league CSV export and return the roster summaries."),
		mcp.WithString("source_path", mcp.Description("Path to the CSV export holding both rosters."), mcp.Required()),
		mcp.WithString("home_name", mcp.Description("Label of the roster listed first (defaults to 本帮).")),
		mcp.WithString("away_name", mcp.Description("Label of the roster listed second (defaults to 敌帮).")),
		mcp.WithNumber("split_line", mcp.Description("0-based line of the blank separator; omit to detect it.")),
	), h.handleBuildReport)

	// --- 2. Tool: group_view ---
	s.AddTool(mcp.NewTool("group_view",
		mcp.WithDescription("Return the ranked or statistics view of one roster grouped by role or leader."),
		mcp.WithString("source_path", mcp.Description("Path to the CSV export holding both rosters."), mcp.Required()),
		mcp.WithString("roster", mcp.Description("Roster to show. Defaults to 'home'."), mcp.Enum("home", "away", "both")),
		mcp.WithString("by", mcp.Description("Grouping key. Defaults to 'role'."), mcp.Enum("role", "leader")),
		mcp.WithString("kind", mcp.Description("View layout. Defaults to 'ranked'."), mcp.Enum("ranked", "stats")),
		mcp.WithNumber("split_line", mcp.Description("0-based line of the blank separator; omit to detect it.")),
	), h.handleGroupView)

	// --- 3. Tool: compare_rosters ---
	s.AddTool(mcp.NewTool("compare_rosters",
		mcp.WithDescription("Compare the totals of both rosters of a league CSV export."),
		mcp.WithString("source_path", mcp.Description("Path to the CSV export holding both rosters."), mcp.Required()),
		mcp.WithString("home_name", mcp.Description("Label of the roster listed first.")),
		mcp.WithString("away_name", mcp.Description("Label of the roster listed second.")),
		mcp.WithNumber("split_line", mcp.Description("0-based line of the blank separator; omit to detect it.")),
	), h.handleCompareRosters)

	return s
}

// StartMCPServer starts the Leaguestat MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
