package ui

import (
	"fmt"
	"io"

	"github.com/wahlandcase/attuned.release/internal/release"
)

// Printer is the sequential fallback observer for non-interactive output
// (piped stdout, CI, --plain)
type Printer struct {
	Out io.Writer

	titles map[release.State]string
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out, titles: make(map[release.State]string)}
}

func (p *Printer) StepStarted(state release.State, title string) {
	p.titles[state] = title
}

func (p *Printer) StepFinished(state release.State, note string) {
	fmt.Fprintln(p.Out, StepLine("✓", p.title(state), note, DoneStyle))
}

func (p *Printer) StepSkipped(state release.State, reason string) {
	fmt.Fprintln(p.Out, StepLine("–", state.String(), reason, SkipStyle))
}

func (p *Printer) StepFailed(state release.State, err error) {
	fmt.Fprintln(p.Out, StepLine("✗", p.title(state), "", ErrorStyle))
}

func (p *Printer) title(state release.State) string {
	if t, ok := p.titles[state]; ok {
		return t
	}
	return state.String()
}
