package monitor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ft/internal/features"
)

var (
	// Base colors
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")

	headerBarStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	categoryHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	enabledStyle  = lipgloss.NewStyle().Foreground(successColor)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	lockedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	errStyle      = lipgloss.NewStyle().Foreground(errorColor)
	statusStyle   = lipgloss.NewStyle().Foreground(successColor)

	sourceStyles = map[features.Source]lipgloss.Style{
		features.SourceKillSwitch: lipgloss.NewStyle().Foreground(errorColor),
		features.SourceBuild:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		features.SourceRuntime:    lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		features.SourceDefault:    lipgloss.NewStyle().Foreground(mutedColor),
	}
)
