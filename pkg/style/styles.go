package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6b6b6b", Dark: "#7a7a7a"}
	SameColor    = lipgloss.AdaptiveColor{Light: "#0550ae", Dark: "#58a6ff"}
	CreateColor  = lipgloss.AdaptiveColor{Light: "#116329", Dark: "#3fb950"}
	ChangeColor  = lipgloss.AdaptiveColor{Light: "#953800", Dark: "#d29922"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#bc8cff"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	GroupStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ChangeColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)
)

// Change status styles
var (
	SameStyle = lipgloss.NewStyle().
			Foreground(SameColor)

	CreateStyle = lipgloss.NewStyle().
			Foreground(CreateColor)

	OverwriteStyle = lipgloss.NewStyle().
			Foreground(ChangeColor)
)

// Diff styles
var (
	DiffDeleteStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	DiffInsertStyle = lipgloss.NewStyle().
			Foreground(CreateColor)

	DiffContextStyle = lipgloss.NewStyle().
				Foreground(MutedColor)
)
