package cmd

import (
	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/spf13/cobra"
)

// tabsFragment is the --fragment value of tabsCmd.
var tabsFragment string

// tabsCmd prints the dashboard section tabs with the active one highlighted.
var tabsCmd = &cobra.Command{
	Use:   "tabs [file]",
	Short: "Show the dashboard section tabs.",
	Long: `Print the dashboard tabs and which one is active.

The tabs come from the document when it names any and fall back to the
standard dashboard sections otherwise. --fragment selects the active tab
the way a URL fragment would.

Examples:
  compareview tabs
  compareview tabs dashboard.yaml --fragment '#funnel'`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.TabsExecutor(tabsFragment)(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run tabs", err)
		}
	},
}
