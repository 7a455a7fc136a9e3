// Package schema has the models shared by all parts of ownerscope.
package schema

import "time"

// UnknownOwner is the sentinel owner assigned to paths no rule matches.
// The manifest parser rejects rules that try to claim this identifier,
// so it can never collide with a configured owner.
const UnknownOwner = "Unknown"

// ChangeRecord is one (commit, file) attribution unit, the finest-grained
// fact the pipeline produces. A single commit contributes one record per
// file it touched.
type ChangeRecord struct {
	Date   time.Time `json:"date"`   // Committer timestamp, normalized to UTC
	Author string    `json:"author"` // Commit author email
	File   string    `json:"file"`   // A-side path of the change
	Owner  string    `json:"owner"`  // Resolved owner, or UnknownOwner
}

// OwnerFileStat is the aggregated change count for one file attributed to
// one owner. Rows only exist for (owner, file) pairs that were observed,
// so Changes is always >= 1.
type OwnerFileStat struct {
	Owner   string `json:"owner"`
	File    string `json:"file"`
	Changes int    `json:"changes"`
}

// OwnerReport is one owner's ranked slice of the report. Files holds at
// most the top N files by change count; TotalChanges always covers every
// file attributed to the owner, including truncated ones.
type OwnerReport struct {
	Owner        string          `json:"owner"`
	TotalChanges int             `json:"totalChanges"`
	Files        []OwnerFileStat `json:"files"`
}

// Summary holds the headline counts for an analysis window.
// CommitDates counts distinct committer timestamps rather than commits;
// two commits on the same instant collapse into one. That is the metric's
// literal definition, so the name says dates, not commits.
type Summary struct {
	CommitDates int `json:"totalCommitDates"`
	Files       int `json:"totalFiles"`
	Owners      int `json:"totalOwners"`
}

// AnalysisResult is the caller-owned output of one analysis run. Nothing is
// persisted between runs; a caller that wants to re-display a result keeps
// the struct and passes it back to the writer.
type AnalysisResult struct {
	Status   AnalysisStatus `json:"status"`
	RepoPath string         `json:"repoPath"`
	Branch   string         `json:"branch"`
	Since    time.Time      `json:"since"`
	Commits  int            `json:"commits"` // Commits walked in the window
	Summary  Summary        `json:"summary"`
	Owners   []OwnerReport  `json:"owners"` // Ordered by TotalChanges descending
}

// HasReport reports whether the result carries per-owner tables.
func (r *AnalysisResult) HasReport() bool {
	return r.Status == StatusOK
}
