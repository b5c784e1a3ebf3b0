package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const dashboardYAML = `title: Regional Dashboard
metrics:
  - key: revenue
    label: Revenue
    format: currency
  - key: conversion
    label: Conversion
    format: percentage
items:
  - id: north
    label: North
    metrics:
      revenue: 1234567
      conversion: 12.5
  - id: south
    label: South
    metrics:
      revenue: 500
      conversion: N/A
points:
  - label: A
    value: 30
  - label: B
    value: 70
funnel:
  - step: Visit
    users: 1000
  - step: Submit
    users: 250
links:
  - from: Google
    to: /home
    users: 300
journeys:
  - label: Home → Contact
    value: 250
total_users: 1000
tabs:
  - id: overview
    label: Overview
  - id: compare
    label: Compare
active_tab: compare
`

func writeDashboard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dashboardYAML), 0o644))
	return path
}

func testConfig(t *testing.T, output schema.OutputMode, ext string) *contract.Config {
	t.Helper()
	return &contract.Config{
		InputPath:         writeDashboard(t),
		MaxSelections:     6,
		InitialSelections: 3,
		View:              schema.TableView,
		Output:            output,
		OutputFile:        filepath.Join(t.TempDir(), "out"+ext),
		Locale:            language.English,
	}
}

func readOutput(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return string(data)
}

func TestExecuteCompareCSV(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut, ".csv")
	require.NoError(t, ExecuteCompare(context.Background(), cfg))

	out := readOutput(t, cfg)
	assert.Contains(t, out, "metric,label,format,North,South")
	assert.Contains(t, out, `revenue,Revenue,currency,"$1,234,567",$500`)
	assert.Contains(t, out, "conversion,Conversion,percentage,12.5%,N/A")
}

func TestExecuteCompareExplicitSelection(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut, ".csv")
	cfg.Select = []string{"south"}
	require.NoError(t, ExecuteCompare(context.Background(), cfg))
	assert.True(t, strings.HasPrefix(readOutput(t, cfg), "metric,label,format,South\n"))
}

func TestExecuteCompareRadarSVG(t *testing.T) {
	cfg := testConfig(t, schema.SVGOut, ".svg")
	cfg.View = schema.RadarView
	require.NoError(t, ExecuteCompare(context.Background(), cfg))
	assert.Contains(t, readOutput(t, cfg), "<svg")
}

func TestExecuteCompareTableVisualRejected(t *testing.T) {
	cfg := testConfig(t, schema.SVGOut, ".svg")
	assert.Error(t, ExecuteCompare(context.Background(), cfg))
}

func TestExecuteCompareNoInput(t *testing.T) {
	cfg := testConfig(t, schema.TextOut, ".txt")
	cfg.InputPath = ""
	assert.ErrorIs(t, ExecuteCompare(context.Background(), cfg), errNoInput)
}

func TestExecuteCompareCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, ExecuteCompare(ctx, testConfig(t, schema.TextOut, ".txt")), context.Canceled)
}

func TestChartExecutorFunnelCSV(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut, ".csv")
	require.NoError(t, ChartExecutor(schema.FunnelChart)(context.Background(), cfg))

	out := readOutput(t, cfg)
	assert.Contains(t, out, "0,Visit,1000,80,")
	assert.Contains(t, out, "Users: 250 (20.0%)")
}

func TestChartExecutorDoughnutHTML(t *testing.T) {
	cfg := testConfig(t, schema.HTMLOut, ".html")
	require.NoError(t, ChartExecutor(schema.DoughnutChart)(context.Background(), cfg))
	assert.Contains(t, readOutput(t, cfg), "echarts")
}

func TestFlowExecutorSankeyJSON(t *testing.T) {
	cfg := testConfig(t, schema.JSONOut, ".json")
	require.NoError(t, FlowExecutor(schema.SankeyFlow)(context.Background(), cfg))
	out := readOutput(t, cfg)
	assert.Contains(t, out, `"from": "Google"`)
	assert.Contains(t, out, `"title": "Regional Dashboard"`)
}

func TestFlowExecutorJourneysCSV(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut, ".csv")
	require.NoError(t, FlowExecutor(schema.JourneysFlow)(context.Background(), cfg))
	assert.Contains(t, readOutput(t, cfg), "Home → Contact,250,25,#033180")
}

func TestFlowExecutorUnknown(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut, ".csv")
	assert.Error(t, FlowExecutor("bubbles")(context.Background(), cfg))
}

func TestTabsExecutor(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut, ".csv")
	require.NoError(t, TabsExecutor("")(context.Background(), cfg))
	assert.Equal(t, "id,label,icon,active\noverview,Overview,,false\ncompare,Compare,,true\n", readOutput(t, cfg))

	cfg = testConfig(t, schema.CSVOut, ".csv")
	cfg.InputPath = ""
	require.NoError(t, TabsExecutor("#funnel")(context.Background(), cfg))
	assert.Contains(t, readOutput(t, cfg), "funnel,Conversion Funnel,🎯,true")
}

func TestExecuteFormats(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut, ".csv")
	require.NoError(t, ExecuteFormats(context.Background(), cfg))
	assert.Contains(t, readOutput(t, cfg), `currency,$ followed by the grouped number,1234567,"$1,234,567"`)
}

func TestFormatterFor(t *testing.T) {
	assert.Same(t, DefaultFormatter(), FormatterFor(nil))
	assert.Same(t, DefaultFormatter(), FormatterFor(&contract.Config{}))
	assert.Equal(t, "1.000", FormatterFor(&contract.Config{Locale: language.German}).Number(1000))
}
