package cli

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle = lipgloss.NewStyle().Bold(true)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
	liveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

func yesNo(v bool) string {
	if v {
		return okStyle.Render("yes")
	}
	return dimStyle.Render("no")
}
