package tui

import (
	"strings"

	"github.com/wahlandcase/attuned.release/internal/ui"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the step list, and after completion the summary (plus the
// changelog preview for dry runs)
func (m Model) View() string {
	var sections []string

	sections = append(sections, "")
	sections = append(sections, ui.SectionHeader("RELEASE "+strings.ToUpper(m.opts.Kind.String()), ui.BumpColor(m.opts.Kind.String())))
	if m.opts.DryRun {
		sections = append(sections, ui.DryRunBanner())
	}
	sections = append(sections, "")

	for _, s := range m.steps {
		switch s.status {
		case statusRunning:
			sections = append(sections, ui.StepLine(spinnerFrames[m.spinnerFrame], s.title, "", ui.StepStyle))
		case statusDone:
			sections = append(sections, ui.StepLine("✓", s.title, s.note, ui.DoneStyle))
		case statusSkipped:
			sections = append(sections, ui.StepLine("–", s.title, s.note, ui.SkipStyle))
		case statusFailed:
			sections = append(sections, ui.StepLine("✗", s.title, "", ui.ErrorStyle))
		}
	}

	if m.done {
		sections = append(sections, "")
		sections = append(sections, m.renderSummary())
	}

	return strings.Join(sections, "\n") + "\n"
}

func (m Model) renderSummary() string {
	if m.err != nil {
		return "  " + ui.ErrorStyle.Render("✗ "+m.err.Error())
	}

	// The run goroutine has finished once runDoneMsg arrives, so reading
	// the run's fields here is safe.
	var lines []string
	if m.run.Current != nil && m.run.Next != nil {
		lines = append(lines, ui.VersionArrow(m.run.Current.String(), m.run.Next.String(), m.opts.Kind.String()))
	}

	if m.opts.DryRun {
		lines = append(lines, "")
		lines = append(lines, ui.PreviewBox(m.run.Preview, m.width-8))
		lines = append(lines, "")
		lines = append(lines, "  "+ui.WarnStyle.Render("Dry run - nothing was changed"))
	} else {
		lines = append(lines, "")
		lines = append(lines, "  "+ui.DoneStyle.Render("Released "+m.run.TagName))
	}

	return strings.Join(lines, "\n")
}
