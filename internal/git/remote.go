package git

import (
	"os/exec"
	"strings"
)

// Network operations shell out to the git CLI (to inherit SSH agent and
// credential helpers), while everything local goes through go-git.

// FetchTags fetches tags from the remote so the tag-exists check sees
// releases cut elsewhere
func (r *Repo) FetchTags(remote string) error {
	return r.gitCommand(remote, "fetch", remote, "--tags")
}

// PushBranch pushes the current branch to the remote
func (r *Repo) PushBranch(remote string) error {
	return r.gitCommand(remote, "push", remote)
}

// PushTag pushes a single tag ref to the remote
func (r *Repo) PushTag(remote, tag string) error {
	return r.gitCommand(remote, "push", remote, "refs/tags/"+tag)
}

func (r *Repo) gitCommand(remote string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.path

	output, err := cmd.CombinedOutput()
	if err != nil {
		outputStr := strings.TrimSpace(string(output))
		if outputStr == "" {
			outputStr = "git " + args[0] + " failed (check network/auth)"
		}
		return &RemoteError{Remote: remote, Output: outputStr}
	}
	return nil
}
