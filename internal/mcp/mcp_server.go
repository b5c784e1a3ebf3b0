// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the compareview MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Compareview Metrics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: compare_items ---
	s.AddTool(mcp.NewTool("compare_items",
		mcp.WithDescription("Render a side-by-side comparison of the items in a dashboard document."),
		mcp.WithString("document_path", mcp.Description("Path to the YAML or JSON dashboard document (defaults to the configured input).")),
		mcp.WithString("view", mcp.Description("View mode. Defaults to 'table'."), mcp.Enum("table", "chart", "radar")),
		mcp.WithString("select", mcp.Description("Comma separated item ids to compare instead of the leading items.")),
		mcp.WithNumber("max_selections", mcp.Description("Maximum number of items compared at once.")),
		mcp.WithString("locale", mcp.Description("BCP 47 locale for number grouping (e.g., 'en-US', 'de').")),
	), h.handleCompareItems)

	// --- 2. Tool: format_value ---
	s.AddTool(mcp.NewTool("format_value",
		mcp.WithDescription("Format one metric value under a display rule."),
		mcp.WithString("value", mcp.Description("The raw value. Numbers are formatted, anything else passes through."), mcp.Required()),
		mcp.WithString("format", mcp.Description("Display rule. Defaults to 'number'."), mcp.Enum("number", "percentage", "currency", "time", "text")),
		mcp.WithString("locale", mcp.Description("BCP 47 locale for number grouping.")),
	), h.handleFormatValue)

	// --- 3. Tool: chart_shares ---
	s.AddTool(mcp.NewTool("chart_shares",
		mcp.WithDescription("Build a chart from the document's points and report each point's share of the total."),
		mcp.WithString("kind", mcp.Description("Chart kind."), mcp.Required(), mcp.Enum("bar", "line", "radar", "doughnut", "funnel")),
		mcp.WithString("document_path", mcp.Description("Path to the dashboard document.")),
	), h.handleChartShares)

	// --- 4. Tool: flow_view ---
	s.AddTool(mcp.NewTool("flow_view",
		mcp.WithDescription("Summarize the document's traffic flows as a path timeline, flow bars or journey shares."),
		mcp.WithString("kind", mcp.Description("Flow presentation."), mcp.Required(), mcp.Enum("paths", "sankey", "journeys")),
		mcp.WithString("document_path", mcp.Description("Path to the dashboard document.")),
	), h.handleFlowView)

	return s
}

// StartMCPServer starts the compareview MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
