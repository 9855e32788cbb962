package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the CLI output.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Bold(true).
			Padding(0, 1)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	imprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // Cyan/Teal

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Gray
)

// Header renders a suite banner line.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Dim renders secondary detail text.
func Dim(text string) string {
	return dimStyle.Render(text)
}

// RegressionStatus renders a status word for a run-over-run mean change.
// diffPct is positive when the new run is slower.
func RegressionStatus(diffPct, threshold float64) string {
	switch {
	case diffPct > threshold:
		return failStyle.Render("FAIL")
	case diffPct < -threshold:
		return imprStyle.Render("IMPR")
	default:
		return passStyle.Render("PASS")
	}
}
