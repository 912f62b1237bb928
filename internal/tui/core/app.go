package core

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/auth"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/handlers"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
	"github.com/thenoetrevino/dressdash/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
// It delegates updates to the handlers package and rendering to render.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
// This is the constructor that should be used instead of tui.InitialModel.
func New(deps *pages.Deps, session *auth.Session) *App {
	model := tui.InitialModel(deps, session)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return handlers.Init(a.model)
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := handlers.Update(a.model, msg)
	return a, cmd
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
