package release

import (
	"fmt"
	"time"

	"github.com/wahlandcase/attuned.release/internal/git"
	"github.com/wahlandcase/attuned.release/internal/version"
)

// Steps returns the linear sequence for this run. Dry runs stop after the
// preview; nothing past StatePreview executes, so no mutation can happen.
func (r *Run) Steps() []Step {
	steps := []Step{
		{State: StateReadVersion, Title: "Reading current version", run: (*Run).readVersion},
		{State: StateComputeNext, Title: "Computing next version", run: (*Run).computeNext},
		{State: StateCheckWorktree, Title: "Checking worktree", run: (*Run).checkWorktree},
		{State: StateCheckTag, Title: "Checking tag history", run: (*Run).checkTag},
		{State: StatePreview, Title: "Rendering changelog preview", run: (*Run).preview},
	}
	if r.opts.DryRun {
		return steps
	}

	return append(steps,
		Step{State: StateWriteVersion, Title: "Writing version files", Mutates: true, run: (*Run).writeVersion},
		Step{State: StateChangelog, Title: "Updating changelog", Mutates: true, run: (*Run).updateChangelog},
		Step{State: StateCommit, Title: "Committing release files", Mutates: true, run: (*Run).commit},
		Step{State: StateCreateTag, Title: "Creating tag", Mutates: true, run: (*Run).createTag},
		Step{State: StatePushBranch, Title: "Pushing branch", Mutates: true, run: (*Run).pushBranch, skip: skipUnlessPush},
		Step{State: StatePushTag, Title: "Pushing tag", Mutates: true, run: (*Run).pushTag, skip: skipUnlessPush},
	)
}

func skipUnlessPush(r *Run) string {
	if !r.opts.Push {
		return "push not requested"
	}
	return ""
}

func (r *Run) readVersion() (string, error) {
	v, err := r.store.Read()
	if err != nil {
		return "", err
	}
	r.Current = v
	return v.String(), nil
}

func (r *Run) computeNext() (string, error) {
	r.Next = version.Bump(r.Current, r.opts.Kind)
	r.TagName = r.cfg.TagName(r.Next.String())

	// The previous release tag bounds the changelog commit range
	prev := r.cfg.TagName(r.Current.String())
	if r.repo.TagExists(prev) {
		r.prevTag = prev
	}

	return fmt.Sprintf("%s -> %s (%s)", r.Current, r.Next, r.opts.Kind), nil
}

func (r *Run) checkWorktree() (string, error) {
	if err := r.repo.CheckClean(); err != nil {
		return "", err
	}
	return "clean", nil
}

// checkTag refreshes tags from the remote (skipped in dry runs, which must
// not touch local refs either) and fails if the target tag already exists.
func (r *Run) checkTag() (string, error) {
	remote := r.cfg.Tags.Remote
	if !r.opts.DryRun && r.repo.HasRemote(remote) {
		if err := r.repo.FetchTags(remote); err != nil {
			return "", err
		}
	}

	if r.repo.TagExists(r.TagName) {
		return "", &git.TagExistsError{Tag: r.TagName}
	}
	return r.TagName + " is free", nil
}

func (r *Run) preview() (string, error) {
	commits, err := r.repo.CommitsSince(r.prevTag)
	if err != nil {
		return "", err
	}
	r.commits = commits
	r.Preview = r.gen.Render(commits, r.Next, time.Now())
	return fmt.Sprintf("%d commits since %s", len(commits), r.sinceLabel()), nil
}

func (r *Run) sinceLabel() string {
	if r.prevTag == "" {
		return "the beginning"
	}
	return r.prevTag
}

func (r *Run) writeVersion() (string, error) {
	if err := r.store.Write(r.Next); err != nil {
		return "", err
	}
	return r.store.Path, nil
}

func (r *Run) updateChangelog() (string, error) {
	if err := r.gen.Prepend(r.Preview); err != nil {
		return "", err
	}
	return r.gen.Path, nil
}

func (r *Run) commit() (string, error) {
	paths := append([]string{r.cfg.Paths.VersionFile, r.cfg.Paths.Changelog}, r.cfg.Paths.SyncFiles...)
	msg := r.cfg.FormatCommitMessage(r.TagName, r.opts.Kind.String())

	hash, err := r.repo.Commit(paths, msg)
	if err != nil {
		return "", err
	}
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash, nil
}

func (r *Run) createTag() (string, error) {
	tag, err := r.repo.CreateTag(r.TagName, "Release "+r.TagName)
	if err != nil {
		return "", err
	}
	return tag.Name, nil
}

func (r *Run) pushBranch() (string, error) {
	if err := r.repo.PushBranch(r.cfg.Tags.Remote); err != nil {
		return "", err
	}
	return r.cfg.Tags.Remote, nil
}

// pushTag is the last step on purpose: if the push fails, the local tag,
// commit, version files, and changelog all stay as they are. Recovery is
// manual (documented limitation).
func (r *Run) pushTag() (string, error) {
	if err := r.repo.PushTag(r.cfg.Tags.Remote, r.TagName); err != nil {
		return "", err
	}
	return r.TagName, nil
}
