package workspace

import (
	"github.com/go-git/go-git/v5"
)

// Repo gives access to the git state of a workspace checkout.
type Repo struct {
	repo *git.Repository
}

// OpenRepo opens the git repository backing the workspace. Workspaces
// unpacked from release tarballs are not git checkouts; callers treat
// the error as a non-fatal condition.
func OpenRepo(root string) (*Repo, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, err
	}
	return &Repo{repo}, nil
}

// Head returns the commit hash the workspace is checked out at.
func (r *Repo) Head() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", err
	}
	return head.Hash().String(), nil
}

// IsDirty returns whether the checkout has any uncommited changes.
func (r *Repo) IsDirty() (bool, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return false, err
	}
	status, err := worktree.Status()
	if err != nil {
		return false, err
	}
	return !status.IsClean(), nil
}
