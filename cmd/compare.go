package cmd

import (
	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd renders the side-by-side comparison of a document's items.
var compareCmd = &cobra.Command{
	Use:   "compare <file>",
	Short: "Compare the selected items across every metric.",
	Long: `Load a dashboard document and compare up to --max-selections of its items.

The comparison has three views over the same selection:
- table: one row per metric, one column per item, formatted per metric
- chart: one bar chart per numeric metric
- radar: one derived score per item

Examples:
  # Compare the first three items in a table
  compareview compare dashboard.yaml

  # Pick the items explicitly and show the derived scores
  compareview compare dashboard.yaml --select us,eu,apac --view radar

  # Draw the radar as an SVG file
  compareview compare dashboard.yaml --view radar --format svg --output-file radar.svg

  # Export the comparison cells for a spreadsheet
  compareview compare dashboard.yaml --output csv --output-file compare.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run comparison", err)
		}
	},
}
