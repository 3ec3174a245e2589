package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	ProjectStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	ValueSetStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	TreeStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	TemplateStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
