package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			Width(60)

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// Card text
var (
	mdHeadingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mdStrongStyle   = lipgloss.NewStyle().Bold(true)
	mdEmphasisStyle = lipgloss.NewStyle().Italic(true)
	mdStrikeStyle   = lipgloss.NewStyle().Strikethrough(true)
	mdCodeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	mdMathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	mdLinkStyle     = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("39"))
	mdQuoteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
