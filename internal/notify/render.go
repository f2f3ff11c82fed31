package notify

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/fete/internal/theme"
)

type style struct {
	icon       string
	foreground string
	background string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{icon: "⚠", foreground: theme.WarningFg, background: theme.WarningBg}
	case Error:
		return style{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return style{icon: "✓", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// Render draws the notification as a bordered banner with its title
func Render(n Notification) string {
	st := n.Severity.style()

	headerText := st.icon + " " + n.Title
	width := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(width).
		Render(n.Message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderInline draws the notification as one line: icon and message
func RenderInline(n Notification) string {
	st := n.Severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Render(st.icon + " " + n.Message)
}
