// Package style defines the terminal styling for brackt's command output.
// Colors are adaptive and degrade to plain text on dumb terminals or when
// output is piped.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors for light/dark terminal themes.
var (
	headingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}
	successColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	warningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	pathColor    = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(headingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(pathColor)
)
