package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	// User is the signed in operator, empty before login
	User string
	Role string
	// Hint replaces the default help hint, e.g. while a form is open
	Hint string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "dressdash" and the signed in user
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := " dressdash"
	if props.User != "" {
		leftText += " · " + props.User
		if props.Role != "" {
			leftText += " (" + props.Role + ")"
		}
	}
	rightText := "press ? for help "
	if props.Hint != "" {
		rightText = props.Hint + " "
	}

	leftRendered := StatusBarStyle.Render(leftText)
	rightRendered := StatusBarStyle.Render(rightText)

	// Calculate space between left and right text
	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
