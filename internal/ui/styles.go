package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used across the TUI.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	automateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)
	maybeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")) // Yellow
	dontStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	columnStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.HiddenBorder())
	focusedStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
	boardHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
