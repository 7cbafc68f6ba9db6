package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

var (
	TitleStyle   = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	StepStyle    = lipgloss.NewStyle().Foreground(ColorWhite)
	DoneStyle    = lipgloss.NewStyle().Foreground(ColorGreen)
	SkipStyle    = lipgloss.NewStyle().Foreground(ColorDarkGray)
	WarnStyle    = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	NoteStyle    = lipgloss.NewStyle().Foreground(ColorDarkGray)
	VersionStyle = lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)
)

// BumpColor maps a bump kind to the severity color used in headers
func BumpColor(kind string) lipgloss.Color {
	switch kind {
	case "patch":
		return ColorGreen
	case "minor":
		return ColorYellow
	case "major":
		return ColorRed
	default:
		return ColorWhite
	}
}
