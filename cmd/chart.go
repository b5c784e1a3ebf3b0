package cmd

import (
	"fmt"

	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
	"github.com/spf13/cobra"
)

// chartCmd draws one chart from the points or funnel section of a document.
var chartCmd = &cobra.Command{
	Use:       "chart <bar|line|radar|doughnut|funnel> <file>",
	Short:     "Draw a single chart from a document.",
	ValidArgs: []string{"bar", "line", "radar", "doughnut", "funnel"},
	Long: `Build a chart from the document's points and print or draw it.

Text, CSV, JSON and Parquet outputs list each point with its value, its share
of the total and its tooltip. HTML, SVG and PNG outputs draw the chart.
Funnel charts read the funnel section when the document has one.

Examples:
  # Traffic sources as a doughnut, printed as a table
  compareview chart doughnut dashboard.yaml

  # Conversion funnel as horizontal bars in an HTML page
  compareview chart funnel dashboard.yaml --horizontal --format html --output-file funnel.html

  # Daily sessions as a PNG line chart
  compareview chart line dashboard.yaml --format png --output-file sessions.png`,
	Args:    cobra.ExactArgs(2),
	PreRunE: kindSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		kind, err := parseChartKind(args[0])
		if err != nil {
			contract.LogFatal("Cannot run chart", err)
		}
		if err := core.ChartExecutor(kind)(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run chart", err)
		}
	},
}

func parseChartKind(s string) (schema.ChartKind, error) {
	kind := schema.ChartKind(s)
	if _, ok := schema.ValidChartKinds[kind]; !ok {
		return "", fmt.Errorf("unknown chart kind %q (want bar, line, radar, doughnut or funnel)", s)
	}
	return kind, nil
}
