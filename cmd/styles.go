package cmd

import "github.com/charmbracelet/lipgloss"

// Styles mirror the classic ANSI palette: cyan for headers and request
// lines, white for data rows, yellow for totals, green for confirmations,
// red for errors and stop rows, blue for break rows.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	weekStartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("2"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))
)
