package ui

import "github.com/charmbracelet/lipgloss"

// Lip Gloss styles shared by the interactive list.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	MutedStyle   = lipgloss.NewStyle().Faint(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	HelpStyle     = lipgloss.NewStyle().Faint(true)
)

// Frame wraps s in the rounded border used around the interactive list.
func Frame(s string) string {
	return frameStyle(lipgloss.DefaultRenderer(), lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Render(s)
}
