// Package cmd defines the command-line interface for compareview.
package cmd

import (
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(flowCmd)
	rootCmd.AddCommand(tabsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Int("max-selections", schema.DefaultMaxSelections, "Maximum number of items compared at once")
	rootCmd.PersistentFlags().Int("default-selections", schema.DefaultInitialSelections, "Number of leading items selected on load")
	rootCmd.PersistentFlags().String("view", string(schema.TableView), "View mode: table or chart or radar")
	rootCmd.PersistentFlags().StringP("select", "s", "", "Comma-separated item ids to compare instead of the leading items")
	rootCmd.PersistentFlags().String("title", "", "Override the document title")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet or html or svg or png")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("format", "", "Chart surface: html or svg or png (overrides --output)")
	rootCmd.PersistentFlags().String("locale", contract.DefaultLocale, "BCP 47 locale for number grouping")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of chartCmd to Viper
	chartCmd.Flags().Bool("horizontal", false, "Draw bar and funnel charts with horizontal bars")
	if err := viper.BindPFlags(chartCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart flags", err)
	}

	// Bind all flags of browseCmd to Viper
	browseCmd.Flags().Bool("watch", false, "Reload the document when it changes on disk")
	if err := viper.BindPFlags(browseCmd.Flags()); err != nil {
		contract.LogFatal("Error binding browse flags", err)
	}

	// The fragment only matters to one command, so it stays out of Viper.
	tabsCmd.Flags().StringVar(&tabsFragment, "fragment", "", "URL fragment naming the active tab (e.g. #funnel)")
}
