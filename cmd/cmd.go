// Package cmd defines the command-line interface for ownerscope.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ownerscope/internal/contract"
	"ownerscope/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("branch", "b", contract.DefaultBranch, "Branch whose first-parent history is walked")
	rootCmd.PersistentFlags().IntP("weeks", "w", contract.DefaultLookbackWeeks, "Lookback window in whole weeks (1-52)")
	rootCmd.PersistentFlags().Int("top-files", contract.DefaultTopFiles, "Number of files to display per owner")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
