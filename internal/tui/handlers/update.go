package handlers

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/modelops"
	"github.com/thenoetrevino/dressdash/internal/tui/notifications"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// Init starts the application: a stored session goes straight to the pages
// and is re-validated in the background, otherwise the login form opens.
func Init(m *tui.Model) tea.Cmd {
	if !m.SignedIn() {
		return openLogin(m)
	}
	m.UiState.SetMode(state.NormalMode)
	return tea.Batch(m.Start(), modelops.CheckSession(m))
}

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return HandleWindowResize(m, msg)

	case notifications.Msg:
		return m.Notifications.Add(msg.Severity, msg.Message)

	case notifications.ExpiredMsg:
		m.Notifications.Dismiss(msg.ID)
		return nil

	case pages.SessionExpiredMsg:
		return handleSessionExpired(m, msg.Err)

	case tui.LoginResultMsg:
		return handleLoginResult(m, msg)

	case tui.SessionCheckedMsg:
		if msg.Err != nil {
			return handleSessionExpired(m, msg.Err)
		}
		return nil

	case tui.MutationDoneMsg:
		return handleMutationDone(m, msg)
	}

	// Everything else belongs to the open form or the pages. Pages drop
	// results that are not theirs.
	var cmds []tea.Cmd
	if m.FormState.IsFormActive() {
		cmds = append(cmds, updateForm(m, msg))
	}
	for _, p := range m.Pages {
		_, cmd := p.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	mode := m.UiState.Mode()
	if mode.IsForm() {
		return HandleFormMode(m, msg)
	}
	switch mode {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.LoginMode:
		return HandleLoginMode(m, msg)
	case state.PauseConfirmMode:
		return HandlePauseConfirm(m, msg)
	case state.DiscardConfirmMode:
		return HandleDiscardConfirm(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.Notifications.SetWindowSize(msg.Width, msg.Height)

	for _, p := range m.Pages {
		p.SetSize(msg.Width, m.UiState.ContentHeight())
	}
	return nil
}

// handleMutationDone reports the outcome of an API write and refetches the
// pages it affected.
func handleMutationDone(m *tui.Model, msg tui.MutationDoneMsg) tea.Cmd {
	switch {
	case msg.Err == nil:
		return tea.Batch(
			m.Notifications.Add(notifications.Info, msg.What),
			modelops.RefreshPages(m, msg.Refresh...),
		)
	case errors.Is(msg.Err, modelops.ErrNoChanges):
		return m.Notifications.Add(notifications.Info, "Nothing changed")
	case api.IsKind(msg.Err, api.KindUnauthorized):
		return handleSessionExpired(m, msg.Err)
	}
	return m.Notifications.Add(notifications.Error, "Failed to "+msg.What+": "+api.Message(msg.Err))
}
