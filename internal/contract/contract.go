// Package contract provides the shared configuration, error taxonomy and
// console utilities for ownerscope's internal architecture.
package contract

import "errors"

// Sentinel errors for the failure modes callers are expected to branch on.
// Validation errors (path, repository) short-circuit before any analysis
// begins. A missing branch is reported to the user but does not indicate a
// broken repository. ErrAnalysis wraps any failure inside the per-commit
// processing loop.
var (
	ErrPathNotFound      = errors.New("repository path does not exist")
	ErrInvalidRepository = errors.New("path is not a valid git repository")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrAnalysis          = errors.New("analysis failed")
)
