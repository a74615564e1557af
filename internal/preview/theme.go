package preview

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	lineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	editedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	hostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	restoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
)
