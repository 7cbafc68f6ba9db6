package git

import (
	"github.com/wahlandcase/attuned.release/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitsSince returns commits reachable from HEAD but not from sinceTag,
// or all of history when sinceTag is empty (first release).
func (r *Repo) CommitsSince(sinceTag string) ([]models.CommitRecord, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, err
	}

	// Build set of commits reachable from the previous release tag
	baseCommits := make(map[plumbing.Hash]bool)
	if sinceTag != "" {
		baseHash, err := r.repo.ResolveRevision(plumbing.Revision(sinceTag))
		if err != nil {
			return nil, &GitError{Command: "resolve " + sinceTag, Output: err.Error()}
		}
		baseIter, err := r.repo.Log(&git.LogOptions{From: *baseHash})
		if err != nil {
			return nil, err
		}
		baseIter.ForEach(func(c *object.Commit) error {
			baseCommits[c.Hash] = true
			return nil
		})
	}

	headIter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}

	var commits []models.CommitRecord
	seen := make(map[plumbing.Hash]bool)
	err = headIter.ForEach(func(c *object.Commit) error {
		// Skip if already processed or reachable from the previous tag.
		// Don't stop iteration - merge commits have multiple parents
		// and we need to traverse all paths to find release commits.
		if seen[c.Hash] || baseCommits[c.Hash] {
			return nil
		}
		seen[c.Hash] = true

		commits = append(commits, models.NewCommitRecord(
			c.Hash.String(), c.Message, c.Author.Name, c.Author.When,
		))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return commits, nil
}
