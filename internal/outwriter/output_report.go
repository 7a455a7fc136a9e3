package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"ownerscope/internal/contract"
	"ownerscope/schema"
)

// WriteAnalysis outputs the analysis result, dispatching based on the
// output format configured.
func WriteAnalysis(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVReport(w, result)
		}, "Wrote CSV")
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// writeReportTables renders the summary line plus one table per owner,
// owners already ordered by total change count.
func writeReportTables(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	summary := fmt.Sprintf("Commit dates: %d | Files changed: %d | Code owners: %d",
		result.Summary.CommitDates, result.Summary.Files, result.Summary.Owners)
	if cfg.UseColors {
		summary = contract.SummaryColor.Sprint(summary)
	}
	if cfg.UseEmojis {
		fmt.Fprintf(w, "📊 %s\n\n", summary)
	} else {
		fmt.Fprintf(w, "%s\n\n", summary)
	}

	maxPathWidth := getMaxTablePathWidth(cfg)
	for _, owner := range result.Owners {
		fmt.Fprintln(w, contract.FormatOwnerHeading(owner.Owner, owner.TotalChanges, cfg.UseColors))

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Rank", "File", "Changes"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		data := make([][]string, 0, len(owner.Files))
		for i, stat := range owner.Files {
			data = append(data, []string{
				strconv.Itoa(i + 1),
				contract.TruncatePath(stat.File, maxPathWidth),
				strconv.Itoa(stat.Changes),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Analyzed %d commits in %v\n", result.Commits, duration.Round(time.Millisecond))
	return nil
}

// writeCSVReport flattens the ranked report into owner,file,changes rows.
// Row order matches the report order, so the CSV is reproducible too.
func writeCSVReport(w io.Writer, result *schema.AnalysisResult) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"owner", "file", "changes"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, owner := range result.Owners {
		for _, stat := range owner.Files {
			row := []string{stat.Owner, stat.File, strconv.Itoa(stat.Changes)}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
