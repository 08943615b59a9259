package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive palette: the first value is used on light terminals, the
	// second on dark ones.
	primaryColor   = lipgloss.AdaptiveColor{Light: "#B4572E", Dark: "#E8A87C"}
	secondaryColor = lipgloss.AdaptiveColor{Light: "#1F7A4D", Dark: "#85DCB0"}
	warningColor   = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#F6AE2D"}
	errorColor     = lipgloss.AdaptiveColor{Light: "#B42318", Dark: "#E85D75"}
	mutedColor     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	textColor      = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
	dimTextColor   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Italic(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(textColor)

	selectedLabelStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Width(8).
			Align(lipgloss.Right)

	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(1, 2).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(2)

	iconChecked   = "◆"
	iconUnchecked = "◇"
	iconCursor    = "›"
	iconWarning   = "⚠"
	iconSuccess   = "✓"
	iconError     = "✗"
	iconFolder    = "📁"
)
