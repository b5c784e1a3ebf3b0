package cmd

import (
	"fmt"

	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
	"github.com/spf13/cobra"
)

// flowCmd prints one of the traffic flow views of a document.
var flowCmd = &cobra.Command{
	Use:       "flow <paths|sankey|journeys> <file>",
	Short:     "Show how users move towards a conversion.",
	ValidArgs: []string{"paths", "sankey", "journeys"},
	Long: `Render one of the flow views built from the document's flow sections.

- paths: the top pages at each step before the ending point
- sankey: source to destination links scaled to the busiest link
- journeys: the top conversion paths with their share of all users

Journeys also draw their doughnut with --format html, svg or png.

Examples:
  compareview flow paths dashboard.yaml
  compareview flow sankey dashboard.yaml --output json
  compareview flow journeys dashboard.yaml --format svg --output-file journeys.svg`,
	Args:    cobra.ExactArgs(2),
	PreRunE: kindSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		kind := schema.FlowKind(args[0])
		if _, ok := schema.ValidFlowKinds[kind]; !ok {
			contract.LogFatal("Cannot run flow", fmt.Errorf("unknown flow %q (want paths, sankey or journeys)", args[0]))
		}
		if err := core.FlowExecutor(kind)(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run flow", err)
		}
	},
}
