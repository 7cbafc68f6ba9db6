package git

import (
	"github.com/wahlandcase/attuned.release/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// TagExists reports whether a tag ref with the given name exists locally
func (r *Repo) TagExists(name string) bool {
	_, err := r.repo.Reference(plumbing.NewTagReferenceName(name), true)
	return err == nil
}

// CreateTag creates an annotated tag at HEAD. Fails with *TagExistsError
// if the tag is already present.
func (r *Repo) CreateTag(name, message string) (*models.ReleaseTag, error) {
	if r.TagExists(name) {
		return nil, &TagExistsError{Tag: name}
	}

	head, err := r.repo.Head()
	if err != nil {
		return nil, err
	}

	sig := r.signature()
	if _, err := r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Tagger:  &sig,
		Message: message,
	}); err != nil {
		return nil, &GitError{Command: "tag " + name, Output: err.Error()}
	}

	return &models.ReleaseTag{
		Name:    name,
		Target:  head.Hash().String(),
		Message: message,
	}, nil
}
