package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/modelops"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// HandlePauseConfirm handles the pause/resume confirmation for a store.
func HandlePauseConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		store := m.FormState.PauseTarget()
		m.FormState.SetPauseTarget(nil)
		m.UiState.SetMode(state.NormalMode)
		if store == nil {
			return nil
		}
		return modelops.SetStorePaused(m, *store, !store.IsPaused)
	case "n", "N", "esc":
		m.FormState.SetPauseTarget(nil)
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// HandleDiscardConfirm handles discard confirmation for forms.
// This provides a generic Y/N/ESC handler that works for all discard scenarios.
func HandleDiscardConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	ctx := m.UiState.DiscardContext()
	if ctx == nil {
		// Safety: if context is missing, return to normal mode
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		closeForm(m)
	case "n", "N", "esc":
		// User cancelled - return to the form without clearing it
		m.UiState.SetMode(ctx.SourceMode)
		m.UiState.ClearDiscardContext()
	}
	return nil
}
