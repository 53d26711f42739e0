package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	dialogStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2)

	infoAlertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successAlertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorAlertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)
