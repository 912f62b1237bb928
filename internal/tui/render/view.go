package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var base string
	if m.UiState.Mode() == state.LoginMode {
		base = ViewLogin(m)
	} else {
		base = ViewMain(m)
	}

	// Start layer stack with base view
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(base),
	}

	// Add modal overlay based on mode
	var modalLayer *lipgloss.Layer
	switch mode := m.UiState.Mode(); {
	case mode.IsForm():
		modalLayer = RenderFormLayer(m)
	case mode == state.PauseConfirmMode:
		modalLayer = RenderPauseConfirmLayer(m)
	case mode == state.DiscardConfirmMode:
		modalLayer = RenderDiscardConfirmLayer(m)
	case mode == state.HelpMode:
		modalLayer = RenderHelpLayer(m)
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	// Toasts float above everything
	layers = append(layers, m.Notifications.Layers()...)

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}
