// Package release sequences a version bump, changelog regeneration, commit,
// tag, and optional push as an explicit linear state machine. Each state's
// side effects are documented on its step; the run aborts at the first
// failing step and earlier side effects stay in place (no rollback).
package release

import (
	"github.com/wahlandcase/attuned.release/internal/changelog"
	"github.com/wahlandcase/attuned.release/internal/config"
	"github.com/wahlandcase/attuned.release/internal/git"
	"github.com/wahlandcase/attuned.release/internal/models"
	"github.com/wahlandcase/attuned.release/internal/store"

	"github.com/Masterminds/semver/v3"
)

// State identifies a position in the release sequence
type State int

const (
	StateReadVersion State = iota
	StateComputeNext
	StateCheckWorktree
	StateCheckTag
	StatePreview
	StateWriteVersion
	StateChangelog
	StateCommit
	StateCreateTag
	StatePushBranch
	StatePushTag
)

func (s State) String() string {
	names := []string{
		"ReadVersion",
		"ComputeNext",
		"CheckWorktree",
		"CheckTag",
		"Preview",
		"WriteVersion",
		"Changelog",
		"Commit",
		"CreateTag",
		"PushBranch",
		"PushTag",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Step is one state in the release sequence
type Step struct {
	State State
	// Title is the human description shown while the step runs
	Title string
	// Mutates marks steps with side effects outside process memory
	Mutates bool

	run  func(*Run) (string, error)
	skip func(*Run) string
}

// Observer receives progress events as the run advances
type Observer interface {
	StepStarted(state State, title string)
	StepFinished(state State, note string)
	StepSkipped(state State, reason string)
	StepFailed(state State, err error)
}

// NopObserver discards all events
type NopObserver struct{}

func (NopObserver) StepStarted(State, string)  {}
func (NopObserver) StepFinished(State, string) {}
func (NopObserver) StepSkipped(State, string)  {}
func (NopObserver) StepFailed(State, error)    {}

// Options are the release inputs from the CLI
type Options struct {
	Kind   models.BumpKind
	DryRun bool
	Push   bool
}

// Run holds the state threaded through one release invocation. All
// collaborators are explicit; nothing is process-global.
type Run struct {
	cfg   *config.Config
	store *store.Store
	gen   *changelog.Generator
	repo  *git.Repo
	opts  Options

	// Current is the version read from the store
	Current *semver.Version
	// Next is the computed target version
	Next *semver.Version
	// TagName is the tag for Next (prefix applied)
	TagName string
	// Preview is the rendered changelog section
	Preview string

	prevTag string
	commits []models.CommitRecord
}

// New assembles a Run from its collaborators
func New(cfg *config.Config, st *store.Store, gen *changelog.Generator, repo *git.Repo, opts Options) *Run {
	return &Run{cfg: cfg, store: st, gen: gen, repo: repo, opts: opts}
}

// Execute walks the step sequence in order, reporting progress to obs.
// The first failing step aborts the run; completed steps are not undone.
func (r *Run) Execute(obs Observer) error {
	if obs == nil {
		obs = NopObserver{}
	}

	for _, step := range r.Steps() {
		if step.skip != nil {
			if reason := step.skip(r); reason != "" {
				obs.StepSkipped(step.State, reason)
				continue
			}
		}

		obs.StepStarted(step.State, step.Title)
		note, err := step.run(r)
		if err != nil {
			obs.StepFailed(step.State, err)
			return err
		}
		obs.StepFinished(step.State, note)
	}

	return nil
}
