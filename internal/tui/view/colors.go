package view

import "github.com/charmbracelet/lipgloss"

// Define colors
var (
	Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	Success = lipgloss.AdaptiveColor{Light: "#05A167", Dark: "#05D176"}
	Error   = lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"}
	Warning = lipgloss.AdaptiveColor{Light: "#E0A956", Dark: "#F9C171"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
)

// Define styles
var (
	TitleStyle    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	SuccessStyle  = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle    = lipgloss.NewStyle().Foreground(Error)
	WarningStyle  = lipgloss.NewStyle().Foreground(Warning)
	SubtleStyle   = lipgloss.NewStyle().Foreground(Subtle)
	SelectedStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)
