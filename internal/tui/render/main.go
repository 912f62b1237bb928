package render

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/components"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// ViewMain renders the tab bar, the active page and the status bar
func ViewMain(m *tui.Model) string {
	width := m.UiState.Width()

	visible := m.VisiblePages()
	titles := make([]string, len(visible))
	for i, p := range visible {
		titles[i] = p.Title()
	}
	tabs := components.RenderTabs(titles, m.UiState.ActiveTab(), width, "")

	body := ""
	if page := m.ActivePage(); page != nil {
		body = page.View()
	}
	body = lipgloss.NewStyle().
		Width(width).
		Height(m.UiState.ContentHeight()).
		MaxHeight(m.UiState.ContentHeight()).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, statusBar(m))
}

func statusBar(m *tui.Model) string {
	props := components.StatusBarProps{Width: m.UiState.Width()}
	if id, ok := m.Session.Identity(); ok {
		props.User = id.FullName
		if props.User == "" {
			props.User = id.Email
		}
		props.Role = id.Role
	}

	km := m.Config.KeyMappings
	addEdit := km.Create + " add · " + km.Edit + " edit · ? help"
	switch mode := m.UiState.Mode(); {
	case mode.IsForm():
		props.Hint = km.SaveForm + " save · esc cancel"
	case mode == state.PauseConfirmMode, mode == state.DiscardConfirmMode:
		props.Hint = "y confirm · n cancel"
	case mode == state.NormalMode:
		switch m.ActivePage() {
		case m.Stores:
			props.Hint = km.Create + " add · " + km.Edit + " edit · " + km.TogglePause + " pause · ? help"
		case m.Packages, m.CreditCatalog, m.Prompts, m.Users, m.PaymentFor, m.PaymentMethods:
			props.Hint = addEdit
		case m.Phones:
			props.Hint = km.Create + " add number · ? help"
		case m.BotMessages:
			props.Hint = km.Create + " send message · ? help"
		case m.Downloads:
			props.Hint = km.Create + " new download · ? help"
		case m.ErrorLogs:
			props.Hint = km.Filter + " type: " + pages.ErrorKindLabel(m.ErrorLogs.Kind()) + " · ? help"
		}
	}
	return components.RenderStatusBar(props)
}

// ViewLogin renders the sign in screen
func ViewLogin(m *tui.Model) string {
	content := components.SubtleStyle.Render("Signing in...")
	if form := m.FormState.Form(); form != nil {
		content = form.View()
	}

	box := components.FormBoxStyle.
		Width(min(60, m.UiState.Width()-4)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render("dressdash"),
			components.SubtleStyle.Render("Sign in with your dashboard account"),
			"",
			content,
		))

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
