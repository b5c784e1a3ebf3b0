package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/internal/loader"
	"github.com/huangsam/compareview/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/text/language"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// chartShares is the chart_shares response.
type chartShares struct {
	Spec   schema.ChartSpec `json:"spec"`
	Shares []float64        `json:"shares"`
}

func (h *toolHandler) handleCompareItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyLocale(cfg, request.GetString("locale", "")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if v := request.GetString("view", ""); v != "" {
		mode, err := core.ParseViewMode(v)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid view: %v", err)), nil
		}
		cfg.View = mode
	}
	if s := request.GetString("select", ""); s != "" {
		cfg.Select = contract.SplitList(s)
	}
	if n := request.GetInt("max_selections", 0); n > 0 {
		if n > contract.MaxSelections {
			return mcp.NewToolResultError(fmt.Sprintf("max_selections cannot exceed %d", contract.MaxSelections)), nil
		}
		cfg.MaxSelections = n
		cfg.InitialSelections = min(cfg.InitialSelections, n)
	}

	doc, err := h.document(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	viewer, err := core.BuildViewer(doc, cfg, core.FormatterFor(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	return jsonResult(viewer.Render())
}

func (h *toolHandler) handleFormatValue(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyLocale(cfg, request.GetString("locale", "")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	kind, err := core.ParseFormatKind(request.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid format: %v", err)), nil
	}
	return mcp.NewToolResultText(core.FormatterFor(cfg).Format(parseValue(request.GetString("value", "")), kind)), nil
}

func (h *toolHandler) handleChartShares(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := core.ParseChartKind(request.GetString("kind", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart: %v", err)), nil
	}
	doc, err := h.document(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg := h.baseCfg.Clone()
	spec, err := core.ChartOf(doc, kind, cfg, core.FormatterFor(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chart failed: %v", err)), nil
	}
	return jsonResult(chartShares{Spec: spec, Shares: core.PointShares(spec.Points)})
}

func (h *toolHandler) handleFlowView(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := schema.FlowKind(request.GetString("kind", ""))
	if _, ok := schema.ValidFlowKinds[kind]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid flow %q (want paths, sankey or journeys)", kind)), nil
	}
	doc, err := h.document(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f := core.FormatterFor(h.baseCfg)
	switch kind {
	case schema.PathsFlow:
		return jsonResult(core.PathExploration(doc.Paths, doc.EndingPoint, doc.TotalConversions, f))
	case schema.SankeyFlow:
		return jsonResult(core.SankeyFlow(doc.Links, doc.Title))
	default:
		return jsonResult(core.UserJourney(doc.Journeys, doc.TotalUsers, f))
	}
}

// document loads the request's document_path, falling back to the configured input.
func (h *toolHandler) document(ctx context.Context, request mcp.CallToolRequest) (schema.Document, error) {
	if err := ctx.Err(); err != nil {
		return schema.Document{}, err
	}
	path := request.GetString("document_path", h.baseCfg.InputPath)
	if path == "" {
		return schema.Document{}, fmt.Errorf("document_path is required")
	}
	doc, err := loader.LoadFile(path)
	if err != nil {
		return schema.Document{}, fmt.Errorf("cannot load document: %w", err)
	}
	return doc, nil
}

func applyLocale(cfg *contract.Config, locale string) error {
	if locale == "" {
		return nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale '%s': %w", locale, err)
	}
	cfg.Locale = tag
	return nil
}

// parseValue treats anything that parses as a float as a number.
func parseValue(raw string) schema.MetricValue {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return schema.MetricValue{}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return schema.Number(f)
	}
	return schema.Text(raw)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
