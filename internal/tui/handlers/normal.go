package handlers

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/huhforms"
	"github.com/thenoetrevino/dressdash/internal/tui/modelops"
	"github.com/thenoetrevino/dressdash/internal/tui/notifications"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
// Keys the application does not own go to the active page.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	page := m.ActivePage()

	// the page is taking typed text, so nothing is a shortcut
	if page != nil && page.Focused() {
		_, cmd := page.Update(msg)
		return cmd
	}

	km := m.Config.KeyMappings
	switch msg.String() {
	case km.Quit:
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.NextTab:
		m.UiState.NextTab(len(m.VisiblePages()))
		return nil
	case km.PrevTab:
		m.UiState.PrevTab(len(m.VisiblePages()))
		return nil
	case km.Create:
		return handleCreate(m)
	case km.Edit:
		return handleEdit(m)
	case km.TogglePause:
		return handleTogglePause(m)
	case km.Logout:
		return handleLogout(m)
	}

	if page == nil {
		return nil
	}
	_, cmd := page.Update(msg)
	return cmd
}

func theme(m *tui.Model) huh.Theme {
	return huhforms.CreateDressdashTheme(m.Config.ColorScheme)
}

// handleCreate opens the create dialog of the active tab
func handleCreate(m *tui.Model) tea.Cmd {
	switch m.ActivePage() {
	case m.Stores:
		m.FormState.OpenStore(theme(m), nil, modelops.KnownPackages(m))
		m.UiState.SetMode(state.StoreFormMode)
	case m.Packages:
		m.FormState.OpenPackage(theme(m), nil)
		m.UiState.SetMode(state.PackageFormMode)
	case m.CreditCatalog:
		m.FormState.OpenCreditItem(theme(m), nil)
		m.UiState.SetMode(state.CreditItemFormMode)
	case m.Prompts:
		m.FormState.OpenPrompt(theme(m), nil)
		m.UiState.SetMode(state.PromptFormMode)
	case m.Phones:
		m.FormState.OpenNumber(theme(m), modelops.KnownStores(m))
		m.UiState.SetMode(state.NumberFormMode)
	case m.BotMessages:
		m.FormState.OpenMessage(theme(m), modelops.KnownStores(m))
		m.UiState.SetMode(state.MessageFormMode)
	case m.Downloads:
		m.FormState.OpenDownload(theme(m), modelops.KnownStores(m), pages.DownloadMethodLabel)
		m.UiState.SetMode(state.DownloadFormMode)
	case m.Users:
		if !m.Session.IsAdmin() {
			return m.Notifications.Add(notifications.Warning, "Only admins can manage users")
		}
		m.FormState.OpenUser(theme(m), nil)
		m.UiState.SetMode(state.UserFormMode)
	case m.PaymentFor:
		if !m.Session.IsAdmin() {
			return m.Notifications.Add(notifications.Warning, lookupAdminOnly)
		}
		m.FormState.OpenLookup(theme(m), "payment purpose", "", "")
		m.UiState.SetMode(state.PaymentForFormMode)
	case m.PaymentMethods:
		if !m.Session.IsAdmin() {
			return m.Notifications.Add(notifications.Warning, lookupAdminOnly)
		}
		m.FormState.OpenLookup(theme(m), "payment method", "", "")
		m.UiState.SetMode(state.PaymentMethodFormMode)
	default:
		return nil
	}
	return m.FormState.Form().Init()
}

const lookupAdminOnly = "Only admins can change payment lookups"

// handleEdit opens the edit dialog for the selected row, or the exchange
// rate dialog on the dashboard. Numbers, messages and downloads are
// append-only.
func handleEdit(m *tui.Model) tea.Cmd {
	switch m.ActivePage() {
	case m.Stores:
		store := modelops.SelectedStore(m)
		if store == nil {
			return nil
		}
		m.FormState.OpenStore(theme(m), store, modelops.KnownPackages(m))
		m.UiState.SetMode(state.StoreFormMode)
	case m.Packages:
		pkg := modelops.SelectedPackage(m)
		if pkg == nil {
			return nil
		}
		m.FormState.OpenPackage(theme(m), pkg)
		m.UiState.SetMode(state.PackageFormMode)
	case m.CreditCatalog:
		item := modelops.SelectedCreditItem(m)
		if item == nil {
			return nil
		}
		m.FormState.OpenCreditItem(theme(m), item)
		m.UiState.SetMode(state.CreditItemFormMode)
	case m.Prompts:
		prompt := modelops.SelectedPrompt(m)
		if prompt == nil {
			return nil
		}
		m.FormState.OpenPrompt(theme(m), prompt)
		m.UiState.SetMode(state.PromptFormMode)
	case m.Users:
		user := modelops.SelectedUser(m)
		if user == nil {
			return nil
		}
		if !m.Session.IsAdmin() {
			return m.Notifications.Add(notifications.Warning, "Only admins can manage users")
		}
		m.FormState.OpenUser(theme(m), user)
		m.UiState.SetMode(state.UserFormMode)
	case m.PaymentFor:
		item := modelops.SelectedPaymentFor(m)
		if item == nil {
			return nil
		}
		if !m.Session.IsAdmin() {
			return m.Notifications.Add(notifications.Warning, lookupAdminOnly)
		}
		m.FormState.OpenLookup(theme(m), "payment purpose", item.ID, item.Name)
		m.UiState.SetMode(state.PaymentForFormMode)
	case m.PaymentMethods:
		item := modelops.SelectedPaymentMethod(m)
		if item == nil {
			return nil
		}
		if !m.Session.IsAdmin() {
			return m.Notifications.Add(notifications.Warning, lookupAdminOnly)
		}
		m.FormState.OpenLookup(theme(m), "payment method", item.ID, item.Name)
		m.UiState.SetMode(state.PaymentMethodFormMode)
	case m.Dashboard:
		if !m.Session.IsAdmin() {
			return m.Notifications.Add(notifications.Warning, "Only admins can change the exchange rate")
		}
		m.FormState.OpenRate(theme(m), m.Dashboard.ExchangeRate())
		m.UiState.SetMode(state.RateFormMode)
	default:
		return nil
	}
	return m.FormState.Form().Init()
}

// handleTogglePause asks before pausing or resuming the selected store
func handleTogglePause(m *tui.Model) tea.Cmd {
	store := modelops.SelectedStore(m)
	if store == nil {
		return nil
	}
	m.FormState.SetPauseTarget(store)
	m.UiState.SetMode(state.PauseConfirmMode)
	return nil
}

func handleLogout(m *tui.Model) tea.Cmd {
	modelops.Logout(m)
	m.Stop()
	return tea.Batch(
		openLogin(m),
		m.Notifications.Add(notifications.Info, "Signed out"),
	)
}
