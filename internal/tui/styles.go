package tui

import (
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/config"
)

// Colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6B7280"}
	textColor      = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	headerText     = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// App chrome
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(headerText).
			Background(primaryColor).
			Padding(0, 1).
			MarginBottom(1)

	// Navigation
	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Cards and sections
	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Metrics
	metricLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Width(20)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)

	// Form fields
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(18)

	fieldFocusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Width(18)

	// Table
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(primaryColor)

	referenceRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(secondaryColor)

	// Status
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// Help
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// applyTheme forces the adaptive colors light or dark. System keeps terminal detection.
func applyTheme(theme config.Theme) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
}

// Helper functions

// RenderMetric renders a metric with label and value
func RenderMetric(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		metricLabelStyle.Render(label),
		metricValueStyle.Render(value),
	)
}

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}

// renderSwatch renders a colored block for a zone
func renderSwatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// renderConfidence color-codes a confidence label
func renderConfidence(confidence string) string {
	switch confidence {
	case "High":
		return successStyle.Render(confidence)
	case "Medium":
		return warningStyle.Render(confidence)
	case "Low":
		return errorStyle.Render(confidence)
	}
	return mutedStyle.Render(confidence)
}

// renderSectionHeader renders "── Title ─────" padded to width
func renderSectionHeader(title string, width int) string {
	line := "── " + title + " "
	for len([]rune(line)) < width {
		line += "─"
	}
	return sectionStyle.Render(line)
}
