package git

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo wraps a git repository for release operations
type Repo struct {
	path string
	repo *git.Repository
}

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// Open opens the repository at path
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}
	return &Repo{path: path, repo: repo}, nil
}

// Discover opens the repository containing the current working directory,
// walking up until a git root is found
func Discover() (*Repo, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	path := cwd
	for {
		if IsGitRepo(path) {
			break
		}
		parent := filepath.Dir(path)
		if parent == path {
			return nil, os.ErrNotExist
		}
		path = parent
	}

	return Open(path)
}

// Path returns the repository root path
func (r *Repo) Path() string {
	return r.path
}

// HasRemote reports whether the named remote is configured
func (r *Repo) HasRemote(name string) bool {
	_, err := r.repo.Remote(name)
	return err == nil
}

// CheckClean fails with *DirtyWorktreeError if any tracked file has staged
// or unstaged modifications. Untracked files don't block a release.
func (r *Repo) CheckClean() error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}

	status, err := wt.Status()
	if err != nil {
		return err
	}

	var dirty []string
	for path, st := range status {
		if st.Staging == git.Untracked || st.Worktree == git.Untracked {
			continue
		}
		if st.Staging == git.Unmodified && st.Worktree == git.Unmodified {
			continue
		}
		dirty = append(dirty, path)
	}

	if len(dirty) > 0 {
		sort.Strings(dirty)
		return &DirtyWorktreeError{Files: dirty}
	}
	return nil
}

// signature builds the committer signature from repo config, falling back
// to a fixed identity when none is configured
func (r *Repo) signature() object.Signature {
	sig := object.Signature{
		Name:  "attrel",
		Email: "attrel@localhost",
		When:  time.Now(),
	}
	cfg, err := r.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}

// Commit stages the given repo-relative paths and commits them.
// Returns the new commit hash.
func (r *Repo) Commit(paths []string, message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", err
	}

	for _, p := range paths {
		if _, err := wt.Add(p); err != nil {
			return "", &GitError{Command: "add " + p, Output: err.Error()}
		}
	}

	sig := r.signature()
	hash, err := wt.Commit(message, &git.CommitOptions{Author: &sig})
	if err != nil {
		return "", &GitError{Command: "commit", Output: err.Error()}
	}
	return hash.String(), nil
}
