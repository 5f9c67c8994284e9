// Package tui provides the interactive chat interface, built on Bubbletea
// following the Elm architecture.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the chat interface.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme, an Argentine flag palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#74ACDF"), // Celeste
		Secondary: lipgloss.Color("#F6B40E"), // Sun gold
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
		Error:     lipgloss.Color("#F38BA8"), // Red
		Border:    lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title styles the header bar.
	Title lipgloss.Style

	// UserLabel styles the "You" speaker label.
	UserLabel lipgloss.Style

	// BotLabel styles the translator speaker label.
	BotLabel lipgloss.Style

	// Notice styles informational lines (rate limits, language notes).
	Notice lipgloss.Style

	// Error styles error lines.
	Error lipgloss.Style

	// Help styles the bottom help line.
	Help lipgloss.Style

	// InputBorder frames the input area.
	InputBorder lipgloss.Style
}

// DefaultStyles returns styles based on the default theme.
func DefaultStyles() *Styles {
	theme := DefaultTheme()
	return &Styles{
		theme: theme,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			Padding(0, 1),
		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		BotLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),
		Notice: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
		InputBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}
