package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ownerscope/core"
	"ownerscope/internal/contract"
	"ownerscope/internal/outwriter"
)

// analyzeCmd performs the code ownership analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [repo-path]",
	Short: "Show the most changed files per code owner.",
	Long: `Walk recent first-parent Git history and rank changed files by code owner.

Each commit's changed files are resolved against the repository's CODEOWNERS
manifest, then grouped and ranked so you can see:
- Which owners carry the most recent change volume
- Which files each owner touches most often
- How much recent work lands in unowned (Unknown) territory

Examples:
  # Analyze the last 12 weeks of the master branch
  ownerscope analyze

  # Analyze a different repository and branch
  ownerscope analyze ~/src/myrepo --branch main

  # Narrow the window and export findings to CSV
  ownerscope analyze --weeks 4 --output csv --output-file ownership.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		outwriter.LogAnalysisHeader(cfg)

		start := time.Now()
		progress := func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rProcessed %d/%d commits", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}

		result, err := core.Analyze(rootCtx, cfg, progress)
		if err != nil {
			contract.LogFatal("Cannot run ownership analysis", err)
		}

		if !result.HasReport() {
			outwriter.LogEmptyOutcome(result, cfg)
			return
		}

		if err := outwriter.WriteAnalysis(result, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write analysis output", err)
		}
	},
}
