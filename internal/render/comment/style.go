package comment

import "github.com/charmbracelet/lipgloss"

var (
	cpPeach    = lipgloss.Color("#fab387")
	cpBlue     = lipgloss.Color("#89b4fa")
	cpSubtext0 = lipgloss.Color("#a6adc8")
	cpOverlay1 = lipgloss.Color("#7f849c")

	linkURLStyle   = lipgloss.NewStyle().Foreground(cpBlue).Faint(true)
	quotePrefix    = lipgloss.NewStyle().Foreground(cpOverlay1).Render("│ ")
	quoteTextStyle = lipgloss.NewStyle().Italic(true).Foreground(cpSubtext0)
	codeStyle      = lipgloss.NewStyle().Foreground(cpPeach)
)
