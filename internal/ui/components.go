package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// VersionArrow renders the version transition, colored by bump kind
// Example: 1.2.3 ====> 1.3.0
func VersionArrow(current, next, kind string) string {
	arrowStyle := lipgloss.NewStyle().Foreground(ColorCyan)
	nextStyle := lipgloss.NewStyle().Foreground(BumpColor(kind)).Bold(true)

	return fmt.Sprintf("  %s%s%s  %s",
		VersionStyle.Render(current),
		arrowStyle.Render("  ====>  "),
		nextStyle.Render(next),
		NoteStyle.Render("("+kind+")"),
	)
}

// StepLine renders a single finished step
// Example: "  ✓ Creating tag  v1.3.0"
func StepLine(mark, title, note string, style lipgloss.Style) string {
	line := "  " + style.Render(mark+" "+title)
	if note != "" {
		line += "  " + NoteStyle.Render(note)
	}
	return line
}

// DryRunBanner renders the warning header for dry runs
func DryRunBanner() string {
	return WarnStyle.Render("  ⚠ DRY RUN - no changes will be made")
}

// PreviewBox renders the changelog preview inside a rounded border
func PreviewBox(preview string, width int) string {
	if width < 40 {
		width = 40
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPurple).
		Width(width).
		Padding(0, 2)
	return box.Render(strings.TrimRight(preview, "\n"))
}
