// Package gitrepo wraps go-git with the small read-only surface the
// analysis needs: open + validate a repository, walk first-parent history
// inside a time window, and enumerate the files a commit changed.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"ownerscope/internal/contract"
)

// Repository is a read-only handle on a local git repository.
type Repository struct {
	path string
	repo *git.Repository
}

// Open validates and opens the repository at path. A missing path fails
// with contract.ErrPathNotFound; an existing path that is not a recognized
// repository fails with contract.ErrInvalidRepository. Both are detected
// before any history is read.
func Open(path string) (*Repository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", contract.ErrPathNotFound, path)
	}
	repo, err := git.PlainOpen(path)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", contract.ErrInvalidRepository, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", contract.ErrInvalidRepository, path, err)
	}
	return &Repository{path: path, repo: repo}, nil
}

// Path returns the repository path the handle was opened with.
func (r *Repository) Path() string {
	return r.path
}

// WalkFirstParent enumerates commits reachable from the named branch tip,
// newest first, following only the first parent of each commit. The walk
// stops at the first commit whose committer timestamp (UTC) falls before
// since, so every returned commit lies inside the window. An empty result
// is a normal outcome, not an error.
func (r *Repository) WalkFirstParent(ctx context.Context, branch string, since time.Time) ([]*object.Commit, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contract.ErrBranchNotFound, branch)
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: resolving tip of %s: %v", contract.ErrBranchNotFound, branch, err)
	}

	var commits []*object.Commit
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if commit.Committer.When.UTC().Before(since) {
			break
		}
		commits = append(commits, commit)
		if commit.NumParents() == 0 {
			break
		}
		commit, err = commit.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("%w: commit %s: %v", contract.ErrAnalysis, commits[len(commits)-1].Hash, err)
		}
	}
	return commits, nil
}

// ChangedFiles returns the set of a-side paths in the diff between the
// commit and its first parent. A root commit yields the empty set: initial
// commit content is not attributed. Merge commits are diffed against the
// first parent only, so changes merged in from other parents are not
// separately attributed.
func ChangedFiles(commit *object.Commit) ([]string, error) {
	if commit.NumParents() == 0 {
		return nil, nil
	}
	parent, err := commit.Parent(0)
	if err != nil {
		return nil, err
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}
	changes, err := parentTree.Diff(tree)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(changes))
	files := make([]string, 0, len(changes))
	for _, change := range changes {
		// Inserts have no a-side and are skipped; deletions and
		// modifications report the pre-rename path.
		name := change.From.Name
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		files = append(files, name)
	}
	return files, nil
}
