package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/modelops"
	"github.com/thenoetrevino/dressdash/internal/tui/notifications"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// ============================================================================
// LOGIN HANDLERS
// ============================================================================

// HandleLoginMode handles keys on the sign in screen. The form cannot be
// dismissed; ctrl+c quits.
func HandleLoginMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if m.FormState.Form() == nil {
		// waiting on the backend
		return nil
	}
	if msg.String() == m.Config.KeyMappings.SaveForm {
		return submitLogin(m)
	}
	return updateForm(m, msg)
}

// openLogin shows the sign in form.
func openLogin(m *tui.Model) tea.Cmd {
	m.UiState.ClearDiscardContext()
	m.UiState.SetMode(state.LoginMode)
	m.FormState.Clear()
	m.FormState.OpenLogin(theme(m))
	return m.FormState.Form().Init()
}

func submitLogin(m *tui.Model) tea.Cmd {
	email, password := m.FormState.Login.Credentials()
	// a nil form shows the signing in state
	m.FormState.SetForm(nil)
	return modelops.Login(m, email, password)
}

func handleLoginResult(m *tui.Model, msg tui.LoginResultMsg) tea.Cmd {
	if msg.Err != nil {
		return tea.Batch(
			openLogin(m),
			m.Notifications.Add(notifications.Error, "Sign in failed: "+api.Message(msg.Err)),
		)
	}

	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
	m.UiState.SetActiveTab(0, len(m.VisiblePages()))

	name := msg.Identity.FullName
	if name == "" {
		name = msg.Identity.Email
	}
	return tea.Batch(
		m.Start(),
		m.Notifications.Add(notifications.Info, "Signed in as "+name),
	)
}

// handleSessionExpired signs out after the backend rejected the token.
func handleSessionExpired(m *tui.Model, err error) tea.Cmd {
	if m.UiState.Mode() == state.LoginMode {
		return nil
	}
	m.Logger.Warn("session expired", "error", err)
	modelops.Logout(m)
	m.Stop()
	return tea.Batch(
		openLogin(m),
		m.Notifications.Add(notifications.Warning, "Session expired, please sign in again"),
	)
}
