package handlers

import (
	"errors"
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

func TestInit_WithoutSessionOpensLogin(t *testing.T) {
	m, b := newTestModel(t, "")
	start(m)

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	assert.True(t, m.FormState.IsFormActive())
	assert.False(t, m.Started())
	assert.False(t, b.Called("GET /stores"), "pages must not fetch before sign in")
}

func TestInit_WithSessionLoadsPages(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.True(t, b.Called("GET /auth/me"))
	assert.True(t, b.Called("GET /stores"))
	assert.True(t, b.Called("GET /kpi"))
	require.Len(t, m.Stores.Filtered(), 1)
	assert.Equal(t, "Nile", m.Stores.Filtered()[0].Name)
}

func TestLogin_Success(t *testing.T) {
	m, b := newTestModel(t, "")
	start(m)

	m.FormState.Login.Email = " mona@example.com "
	m.FormState.Login.Password = "secret"
	send(m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.True(t, m.SignedIn())
	assert.True(t, m.Session.IsAdmin())
	assert.Contains(t, b.Payload("POST /auth/login"), `"email":"mona@example.com"`)
	assert.Contains(t, toasts(m), "Signed in as Mona")
	assert.True(t, b.Called("GET /stores"))
}

func TestLogin_Failure(t *testing.T) {
	m, b := newTestModel(t, "")
	b.Fail("POST /auth/login", http.StatusUnauthorized)
	start(m)

	m.FormState.Login.Email = "mona@example.com"
	m.FormState.Login.Password = "wrong"
	send(m, "ctrl+s")

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	assert.False(t, m.SignedIn())
	assert.True(t, m.FormState.IsFormActive(), "login form should reopen")
	assert.Equal(t, "mona@example.com", m.FormState.Login.Email)
	assert.Empty(t, m.FormState.Login.Password)
	require.NotEmpty(t, toasts(m))
	assert.Contains(t, toasts(m)[0], "Sign in failed")
}

func TestTabs_SwitchAndWrap(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)

	assert.Equal(t, "dashboard", m.ActivePage().Name())
	send(m, "tab")
	assert.Equal(t, "stores", m.ActivePage().Name())
	send(m, "shift+tab", "shift+tab")
	assert.Equal(t, "payment-methods", m.ActivePage().Name())
}

func TestTabs_StaffCannotSeeUsers(t *testing.T) {
	m, _ := newTestModel(t, "staff")
	start(m)

	for _, p := range m.VisiblePages() {
		assert.NotEqual(t, "users", p.Name())
	}
	assert.Len(t, m.VisiblePages(), len(m.Pages)-1)
}

func TestSessionExpired_ReturnsToLogin(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Fail("/stores", http.StatusUnauthorized)
	start(m)

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	assert.False(t, m.SignedIn())
	assert.False(t, m.Started())
	assert.Contains(t, toasts(m), "Session expired, please sign in again")
}

func TestSessionCheckFailure_ReturnsToLogin(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Fail("/auth/me", http.StatusUnauthorized)
	start(m)

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	assert.False(t, m.SignedIn())
}

func TestPause_Confirm(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "stores")

	send(m, "p")
	require.Equal(t, state.PauseConfirmMode, m.UiState.Mode())
	require.NotNil(t, m.FormState.PauseTarget())

	send(m, "y")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.True(t, b.Called("PATCH /stores/s1"))
	assert.JSONEq(t, `{"is_paused":true}`, b.Payload("PATCH /stores/s1"))
	assert.Contains(t, toasts(m), `Store "Nile" paused`)
}

func TestPause_Cancel(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "stores")

	send(m, "p", "n")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.FormState.PauseTarget())
	assert.False(t, b.Called("PATCH /stores/s1"))
}

func TestPause_OnlyOnStoresTab(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)

	send(m, "p")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestCreateStore(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Set("POST /stores", `{"store_id":"s2","store_name":"Zamalek"}`)
	start(m)
	openTab(t, m, "stores")

	send(m, "a")
	require.Equal(t, state.StoreFormMode, m.UiState.Mode())
	assert.Nil(t, m.FormState.EditingStore())

	m.FormState.Store.Name = "Zamalek"
	m.FormState.Store.PackageID = "p1"
	send(m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.FormState.IsFormActive())
	assert.JSONEq(t,
		`{"store_name":"Zamalek","store_kind":"Market","package_id":"p1","max_images_per_hour":100,"max_images_per_msg":10}`,
		b.Payload("POST /stores"))
	assert.Contains(t, toasts(m), `Store "Zamalek" created`)
}

func TestEditStore_SendsOnlyChanges(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Set("PATCH /stores/s1", `{"store_id":"s1","store_name":"Nile Boutique"}`)
	start(m)
	openTab(t, m, "stores")

	send(m, "e")
	require.Equal(t, state.StoreFormMode, m.UiState.Mode())
	require.NotNil(t, m.FormState.EditingStore())

	m.FormState.Store.Name = "Nile Boutique"
	send(m, "ctrl+s")

	assert.JSONEq(t, `{"store_name":"Nile Boutique"}`, b.Payload("PATCH /stores/s1"))
	assert.Contains(t, toasts(m), `Store "Nile Boutique" saved`)
}

func TestEditStore_NoChanges(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "stores")

	send(m, "e", "ctrl+s")
	assert.False(t, b.Called("PATCH /stores/s1"))
	assert.Contains(t, toasts(m), "Nothing changed")
}

func TestStoreForm_InvalidInput(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "stores")

	send(m, "a")
	m.FormState.Store.Name = "Zamalek"
	m.FormState.Store.MaxImagesPerHour = "lots"
	send(m, "ctrl+s")

	assert.False(t, b.Called("POST /stores"))
	require.NotEmpty(t, toasts(m))
	assert.Contains(t, toasts(m)[len(toasts(m))-1], "Invalid store")
}

func TestDiscard_Flow(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "stores")

	send(m, "e")
	m.FormState.Store.Name = "Changed"

	send(m, "esc")
	require.Equal(t, state.DiscardConfirmMode, m.UiState.Mode())
	assert.Equal(t, "Discard store changes?", m.UiState.DiscardContext().Message)

	send(m, "n")
	assert.Equal(t, state.StoreFormMode, m.UiState.Mode())
	assert.Equal(t, "Changed", m.FormState.Store.Name)

	send(m, "esc", "y")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.FormState.IsFormActive())
}

func TestEsc_WithoutChangesCloses(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "packages")

	send(m, "a")
	require.Equal(t, state.PackageFormMode, m.UiState.Mode())
	send(m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestSavePackage(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Set("PATCH /packages/p1", `{"package_id":"p1","name":"Pro Max"}`)
	start(m)
	openTab(t, m, "packages")

	send(m, "e")
	require.Equal(t, state.PackageFormMode, m.UiState.Mode())
	m.FormState.Package.Name = "Pro Max"
	send(m, "ctrl+s")

	assert.True(t, b.Called("PATCH /packages/p1"))
	assert.Contains(t, b.Payload("PATCH /packages/p1"), `"name":"Pro Max"`)
	assert.Contains(t, toasts(m), `Package "Pro Max" saved`)
}

func TestExchangeRate_AdminOnly(t *testing.T) {
	m, b := newTestModel(t, "staff")
	start(m)

	send(m, "e")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Contains(t, toasts(m), "Only admins can change the exchange rate")
	assert.False(t, b.Called("PATCH /common-things/exchange-rate"))
}

func TestExchangeRate_Update(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)

	send(m, "e")
	require.Equal(t, state.RateFormMode, m.UiState.Mode())
	assert.Equal(t, "50", m.FormState.Rate.Rate)

	m.FormState.Rate.Rate = "52.5"
	send(m, "ctrl+s")

	assert.JSONEq(t, `{"exchange_usd_egp":52.5}`, b.Payload("PATCH /common-things/exchange-rate"))
	assert.Contains(t, toasts(m), "Exchange rate set to 52.50")
}

func TestHelp_OpenAndClose(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)

	send(m, "?")
	assert.Equal(t, state.HelpMode, m.UiState.Mode())
	send(m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestLogout(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "stores")

	send(m, "ctrl+o")
	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	assert.False(t, m.SignedIn())
	assert.False(t, m.Started())
	assert.Equal(t, 0, m.UiState.ActiveTab())
	assert.Contains(t, toasts(m), "Signed out")
}

func TestMutationDone_Error(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)

	err := &api.Error{Kind: api.KindConflict, Status: http.StatusConflict, Message: "Store name already taken"}
	drive(m, Update(m, tui.MutationDoneMsg{What: "create store", Err: err}))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Contains(t, toasts(m), "Failed to create store: Store name already taken")
}

func TestMutationDone_Unauthorized(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)

	err := &api.Error{Kind: api.KindUnauthorized, Status: http.StatusUnauthorized}
	drive(m, Update(m, tui.MutationDoneMsg{What: "update store", Err: errors.Join(err)}))

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)

	cmd := Update(m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuit_NotWhileSearching(t *testing.T) {
	m, _ := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "stores")

	send(m, "/")
	require.True(t, m.ActivePage().Focused())
	cmd := Update(m, key("q"))
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit, "q should be typed into the search box")
	}
}
