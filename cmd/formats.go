package cmd

import (
	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/spf13/cobra"
)

// formatsCmd documents the metric display rules.
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the metric display formats with examples.",
	Long: `Show how each metric format renders a sample value under --locale.

Examples:
  compareview formats
  compareview formats --locale de`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFormats(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run formats", err)
		}
	},
}
