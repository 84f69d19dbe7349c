package panel

import "github.com/charmbracelet/lipgloss"

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#b48cff")).
			MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Width(14)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7d5cff"))
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).MarginTop(1)
	collapseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)
