// Package outwriter has output and writer logic for analysis results.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"ownerscope/internal/contract"
	"ownerscope/schema"
)

// LogAnalysisHeader prints a concise, 2-line header for an analysis run.
func LogAnalysisHeader(cfg *contract.Config) {
	repoName := filepath.Base(cfg.RepoPath)
	if repoName == "" || repoName == "." {
		repoName = "current"
	}

	if cfg.UseEmojis {
		fmt.Printf("🔎 Repo: %s (branch: %s)\n", repoName, cfg.Branch)
		fmt.Printf("📅 Window: last %d weeks, since %s\n", cfg.LookbackWeeks, cfg.Since.Format(contract.DateTimeFormat))
	} else {
		fmt.Printf("Repo: %s (branch: %s)\n", repoName, cfg.Branch)
		fmt.Printf("Window: last %d weeks, since %s\n", cfg.LookbackWeeks, cfg.Since.Format(contract.DateTimeFormat))
	}
}

// LogEmptyOutcome prints the warning for a run that finished without a
// report. Both statuses are normal terminal states, not failures.
func LogEmptyOutcome(result *schema.AnalysisResult, cfg *contract.Config) {
	var msg string
	switch result.Status {
	case schema.StatusNoCommits:
		msg = "No commits found in the specified time range"
	case schema.StatusNoChanges:
		msg = "No file changes found in the commits"
	default:
		return
	}
	if cfg.UseEmojis {
		fmt.Printf("⚠️  %s\n", msg)
		return
	}
	fmt.Printf("%s\n", msg)
}

// getMaxTablePathWidth calculates the maximum width for file paths in table
// output based on terminal width and table configuration.
func getMaxTablePathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the Rank and Changes columns plus borders,
	// separators and padding.
	const baseWidth = 30

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
