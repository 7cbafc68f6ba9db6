package models

import (
	"strings"
	"time"
)

// CommitRecord contains information about a git commit
type CommitRecord struct {
	// Hash is the full commit hash
	Hash string
	// Subject is the first line of the commit message
	Subject string
	// Body is the full commit message
	Body string
	// Author is the commit author name
	Author string
	// When is the author timestamp
	When time.Time
}

// NewCommitRecord creates a CommitRecord from raw commit data
func NewCommitRecord(hash, message, author string, when time.Time) CommitRecord {
	return CommitRecord{
		Hash:    hash,
		Subject: strings.Split(message, "\n")[0],
		Body:    message,
		Author:  author,
		When:    when,
	}
}

// ShortHash returns the abbreviated commit hash (7 characters)
func (c CommitRecord) ShortHash() string {
	if len(c.Hash) < 7 {
		return c.Hash
	}
	return c.Hash[:7]
}
