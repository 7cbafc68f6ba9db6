package git

import "strings"

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// TagExistsError indicates the release tag already exists
type TagExistsError struct {
	Tag string
}

func (e *TagExistsError) Error() string {
	return "tag " + e.Tag + " already exists"
}

// RemoteError indicates a fetch or push against the remote failed. Local
// state created before the failure is left in place.
type RemoteError struct {
	Remote string
	Output string
}

func (e *RemoteError) Error() string {
	return "remote " + e.Remote + ": " + e.Output
}

// DirtyWorktreeError indicates tracked files have uncommitted modifications
type DirtyWorktreeError struct {
	Files []string
}

func (e *DirtyWorktreeError) Error() string {
	return "worktree has uncommitted changes: " + strings.Join(e.Files, ", ")
}
