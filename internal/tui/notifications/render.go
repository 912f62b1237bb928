package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// maxToastWidth keeps long API errors from covering the table
const maxToastWidth = 48

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	style := severity.style()

	message = wordwrap.String(message, maxToastWidth)

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.fg)).
		Bold(true).
		Width(maxWidth)

	if style.filled {
		headerStyle = headerStyle.Background(lipgloss.Color(style.bg))
	}

	header := headerStyle.Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.fg)).
		Width(maxWidth).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.border)).
		Background(lipgloss.Color(style.bg)).
		Padding(0, 1).
		Render(content)
}

// RenderToast renders a toast from the stack
func RenderToast(t Toast) string {
	return Render(t.Severity, t.Message)
}

// RenderInline renders a compact inline notification (for tab bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.fg)).
		Background(lipgloss.Color(style.bg)).
		Padding(0, 1).
		Render(content)
}
