package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ownerscope.",
	Long: `Show the release version, git commit, build timestamp and Go runtime
of this binary. Include this output when reporting bugs.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("ownerscope CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
