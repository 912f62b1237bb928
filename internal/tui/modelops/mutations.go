package modelops

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui"
)

// ErrNoChanges is returned when an edit would send an empty patch
var ErrNoChanges = errors.New("nothing changed")

// Login signs in with the credentials from the login form
func Login(m *tui.Model, email, password string) tea.Cmd {
	ctx, session, client := m.Ctx, m.Session, m.Client
	return func() tea.Msg {
		id, err := session.Login(ctx, client, email, password)
		return tui.LoginResultMsg{Identity: id, Err: err}
	}
}

// CheckSession re-validates a stored token with the backend
func CheckSession(m *tui.Model) tea.Cmd {
	ctx, session, client := m.Ctx, m.Session, m.Client
	return func() tea.Msg {
		id, err := session.Refresh(ctx, client)
		return tui.SessionCheckedMsg{Identity: id, Err: err}
	}
}

// Logout drops the session. Failing to clear the stored copy is logged
// but still signs out of this run.
func Logout(m *tui.Model) {
	if err := m.Session.Logout(m.Ctx); err != nil {
		m.Logger.Error("failed to clear stored session", "error", err)
	}
}

// CreateStore posts a new store
func CreateStore(m *tui.Model, in models.StoreInput) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		s, err := client.CreateStore(ctx, in)
		if err != nil {
			logger.Error("failed to create store", "name", in.Name, "error", err)
			return tui.MutationDoneMsg{What: "create store", Err: err}
		}
		logger.Info("store created", "store_id", s.ID, "name", s.Name)
		return tui.MutationDoneMsg{What: fmt.Sprintf("Store %q created", s.Name), Refresh: []string{"stores", "dashboard"}}
	}
}

// UpdateStore patches an existing store
func UpdateStore(m *tui.Model, id string, patch models.StorePatch) tea.Cmd {
	if patch == (models.StorePatch{}) {
		return func() tea.Msg {
			return tui.MutationDoneMsg{What: "update store", Err: ErrNoChanges}
		}
	}
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		s, err := client.UpdateStore(ctx, id, patch)
		if err != nil {
			logger.Error("failed to update store", "store_id", id, "error", err)
			return tui.MutationDoneMsg{What: "update store", Err: err}
		}
		logger.Info("store updated", "store_id", id)
		return tui.MutationDoneMsg{What: fmt.Sprintf("Store %q saved", s.Name), Refresh: []string{"stores"}}
	}
}

// SetStorePaused pauses or resumes a store
func SetStorePaused(m *tui.Model, store models.Store, paused bool) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	verb := "resume"
	if paused {
		verb = "pause"
	}
	return func() tea.Msg {
		if _, err := client.SetStorePaused(ctx, store.ID, paused); err != nil {
			logger.Error("failed to "+verb+" store", "store_id", store.ID, "error", err)
			return tui.MutationDoneMsg{What: verb + " store", Err: err}
		}
		logger.Info("store "+verb+"d", "store_id", store.ID)
		return tui.MutationDoneMsg{What: fmt.Sprintf("Store %q %sd", store.Name, verb), Refresh: []string{"stores"}}
	}
}

// SavePackage creates a package, or updates it when id is set
func SavePackage(m *tui.Model, id string, in models.PackageInput) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		var (
			p   models.Package
			err error
		)
		what := "create package"
		if id == "" {
			p, err = client.CreatePackage(ctx, in)
		} else {
			what = "update package"
			p, err = client.UpdatePackage(ctx, id, in)
		}
		if err != nil {
			logger.Error("failed to "+what, "package_id", id, "error", err)
			return tui.MutationDoneMsg{What: what, Err: err}
		}
		logger.Info("package saved", "package_id", p.ID)
		// stores show the package name
		return tui.MutationDoneMsg{What: fmt.Sprintf("Package %q saved", p.Name), Refresh: []string{"packages", "stores"}}
	}
}

// SetExchangeRate updates the USD to EGP rate
func SetExchangeRate(m *tui.Model, rate float64) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		if _, err := client.SetExchangeRate(ctx, rate); err != nil {
			logger.Error("failed to update exchange rate", "rate", rate, "error", err)
			return tui.MutationDoneMsg{What: "update exchange rate", Err: err}
		}
		logger.Info("exchange rate updated", "rate", rate)
		return tui.MutationDoneMsg{
			What:    fmt.Sprintf("Exchange rate set to %.2f", rate),
			Refresh: []string{"dashboard", "image-jobs"},
		}
	}
}
