// Package core orchestrates the analysis pipeline: walk commit history,
// extract per-commit diffs, resolve ownership, aggregate.
package core

import (
	"context"
	"fmt"

	"ownerscope/core/agg"
	"ownerscope/internal/contract"
	"ownerscope/internal/gitrepo"
	"ownerscope/internal/owners"
	"ownerscope/schema"
)

// ProgressFunc is invoked after each commit is processed so a surrounding
// presentation layer can report incremental progress. Nil disables it.
type ProgressFunc func(done, total int)

// Analyze runs one analysis over cfg's repository and window and returns a
// caller-owned result. The result is never stored by this package; callers
// that want to re-display it without recomputation keep the struct.
//
// Validation failures (bad path, unrecognized repository, missing branch)
// surface as the contract sentinel errors before any commit is processed.
// A failure while processing commits aborts the whole run with the
// offending commit hash in the error; nothing partial is returned, and a
// canceled context likewise discards all collected records.
func Analyze(ctx context.Context, cfg *contract.Config, progress ProgressFunc) (*schema.AnalysisResult, error) {
	repo, err := gitrepo.Open(cfg.RepoPath)
	if err != nil {
		return nil, err
	}

	rules := owners.LoadRepo(cfg.RepoPath)

	commits, err := repo.WalkFirstParent(ctx, cfg.Branch, cfg.Since)
	if err != nil {
		return nil, err
	}

	result := &schema.AnalysisResult{
		RepoPath: cfg.RepoPath,
		Branch:   cfg.Branch,
		Since:    cfg.Since,
		Commits:  len(commits),
	}
	if len(commits) == 0 {
		result.Status = schema.StatusNoCommits
		return result, nil
	}

	var records []schema.ChangeRecord
	for i, commit := range commits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		files, err := gitrepo.ChangedFiles(commit)
		if err != nil {
			return nil, fmt.Errorf("%w: commit %s: %v", contract.ErrAnalysis, commit.Hash, err)
		}
		for _, file := range files {
			records = append(records, schema.ChangeRecord{
				Date:   commit.Committer.When.UTC(),
				Author: commit.Author.Email,
				File:   file,
				Owner:  owners.Resolve(rules, file),
			})
		}
		if progress != nil {
			progress(i+1, len(commits))
		}
	}

	summary, reports, ok := agg.Aggregate(records, cfg.TopFiles)
	if !ok {
		result.Status = schema.StatusNoChanges
		return result, nil
	}

	result.Status = schema.StatusOK
	result.Summary = summary
	result.Owners = reports
	return result, nil
}
