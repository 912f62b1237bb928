package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/auth"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/tui/notifications"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// adminPages are only shown to admins
var adminPages = map[string]bool{
	"users": true,
}

// Model represents the application state for the TUI
type Model struct {
	Ctx     context.Context
	Config  *config.Config
	Client  *api.Client
	Session *auth.Session
	Logger  *slog.Logger

	// Deps are shared with every page
	Deps *pages.Deps

	Pages          []pages.Page
	Dashboard      *pages.Dashboard
	Stores         *pages.StoresPage
	Downloads      *pages.DownloadsPage
	ErrorLogs      *pages.ErrorLogsPage
	CreditCatalog  *pages.CreditCatalogPage
	Prompts        *pages.PromptsPage
	Packages       *pages.PackagesPage
	Phones         *pages.PhonesPage
	Users          *pages.UsersPage
	BotMessages    *pages.BotMessagesPage
	PaymentFor     *pages.PaymentForPage
	PaymentMethods *pages.PaymentMethodsPage

	UiState       *state.UIState
	FormState     *state.FormState
	Notifications *notifications.Stack

	// started is set once the pages have fetched for the current session
	started bool
}

// InitialModel creates the TUI model. Pages are built up front but fetch
// nothing until a session exists.
func InitialModel(deps *pages.Deps, session *auth.Session) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
		deps.Config = cfg
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
		deps.Logger = logger
	}
	ctx := deps.Ctx
	if ctx == nil {
		ctx = context.Background()
		deps.Ctx = ctx
	}

	m := Model{
		Ctx:            ctx,
		Config:         cfg,
		Client:         deps.Client,
		Session:        session,
		Logger:         logger,
		Deps:           deps,
		Dashboard:      pages.NewDashboard(deps),
		Stores:         pages.NewStoresPage(deps),
		Downloads:      pages.NewDownloadsPage(deps),
		ErrorLogs:      pages.NewErrorLogsPage(deps),
		CreditCatalog:  pages.NewCreditCatalogPage(deps),
		Prompts:        pages.NewPromptsPage(deps),
		Packages:       pages.NewPackagesPage(deps),
		Phones:         pages.NewPhonesPage(deps),
		Users:          pages.NewUsersPage(deps),
		BotMessages:    pages.NewBotMessagesPage(deps),
		PaymentFor:     pages.NewPaymentForPage(deps),
		PaymentMethods: pages.NewPaymentMethodsPage(deps),
		UiState:        state.NewUIState(),
		FormState:      state.NewFormState(),
		Notifications:  notifications.NewStack(0),
	}
	m.Pages = []pages.Page{
		m.Dashboard,
		m.Stores,
		pages.NewImageJobsPage(deps),
		pages.NewVideoJobsPage(deps),
		pages.NewTransactionsPage(deps),
		pages.NewRefundsPage(deps),
		m.Downloads,
		m.ErrorLogs,
		m.CreditCatalog,
		m.Prompts,
		m.Packages,
		m.Phones,
		m.Users,
		m.BotMessages,
		m.PaymentFor,
		m.PaymentMethods,
	}
	return m
}

// VisiblePages returns the tabs the signed in operator may open
func (m *Model) VisiblePages() []pages.Page {
	if m.Session != nil && m.Session.IsAdmin() {
		return m.Pages
	}
	visible := make([]pages.Page, 0, len(m.Pages))
	for _, p := range m.Pages {
		if !adminPages[p.Name()] {
			visible = append(visible, p)
		}
	}
	return visible
}

// ActivePage returns the page shown, nil when there are no pages
func (m *Model) ActivePage() pages.Page {
	visible := m.VisiblePages()
	idx := m.UiState.ActiveTab()
	if idx < 0 || idx >= len(visible) {
		return nil
	}
	return visible[idx]
}

// Page looks a page up by name
func (m *Model) Page(name string) pages.Page {
	for _, p := range m.Pages {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// SignedIn reports whether the operator has a session
func (m *Model) SignedIn() bool {
	return m.Session != nil && m.Session.SignedIn()
}

// Started reports whether the pages have been loaded for this session
func (m *Model) Started() bool {
	return m.started
}

// Start fetches every visible page. It runs once per session.
func (m *Model) Start() tea.Cmd {
	if m.started {
		return nil
	}
	m.started = true

	visible := m.VisiblePages()
	cmds := make([]tea.Cmd, 0, len(visible))
	for _, p := range visible {
		p.SetSize(m.UiState.Width(), m.UiState.ContentHeight())
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

// Stop forgets the session's pages so the next sign in refetches
func (m *Model) Stop() {
	m.started = false
	m.UiState.SetActiveTab(0, len(m.VisiblePages()))
}
