// Package agg has the aggregation engine that turns change records into
// ranked per-owner reports.
package agg

import (
	"sort"

	"ownerscope/schema"
)

// groupKey identifies one (owner, file) group.
type groupKey struct {
	owner string
	file  string
}

// Aggregate groups records by (owner, file), counts each group, and ranks
// the result: owners by total change count descending, files within an
// owner by count descending. Both sorts are stable, so ties keep encounter
// order and the report is reproducible for a given record sequence.
// Within each owner only the top topFiles rows are retained; the owner's
// total still covers all of its files.
//
// The boolean is false when the record multiset is empty: that is the
// "no changes" outcome, distinct from a zero-row report.
func Aggregate(records []schema.ChangeRecord, topFiles int) (schema.Summary, []schema.OwnerReport, bool) {
	if len(records) == 0 {
		return schema.Summary{}, nil, false
	}

	dateSet := make(map[int64]struct{})
	fileSet := make(map[string]struct{})
	counts := make(map[groupKey]int)
	var groupOrder []groupKey

	for _, rec := range records {
		dateSet[rec.Date.Unix()] = struct{}{}
		fileSet[rec.File] = struct{}{}

		key := groupKey{owner: rec.Owner, file: rec.File}
		if _, ok := counts[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		counts[key]++
	}

	// Build per-owner file lists in encounter order.
	reportIdx := make(map[string]int)
	var reports []schema.OwnerReport
	for _, key := range groupOrder {
		idx, ok := reportIdx[key.owner]
		if !ok {
			idx = len(reports)
			reportIdx[key.owner] = idx
			reports = append(reports, schema.OwnerReport{Owner: key.owner})
		}
		changes := counts[key]
		reports[idx].TotalChanges += changes
		reports[idx].Files = append(reports[idx].Files, schema.OwnerFileStat{
			Owner:   key.owner,
			File:    key.file,
			Changes: changes,
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].TotalChanges > reports[j].TotalChanges
	})
	for i := range reports {
		files := reports[i].Files
		sort.SliceStable(files, func(a, b int) bool {
			return files[a].Changes > files[b].Changes
		})
		if topFiles > 0 && len(files) > topFiles {
			files = files[:topFiles]
		}
		reports[i].Files = files
	}

	summary := schema.Summary{
		CommitDates: len(dateSet),
		Files:       len(fileSet),
		Owners:      len(reports),
	}
	return summary, reports, true
}
