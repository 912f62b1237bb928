package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dressdash/internal/export"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/testutil"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

func TestCreateCreditItem(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "credit-catalog")

	send(m, "a")
	require.Equal(t, state.CreditItemFormMode, m.UiState.Mode())
	assert.Nil(t, m.FormState.EditingCreditItem())

	m.FormState.CreditItem.JobName = "Dress photo"
	m.FormState.CreditItem.CreditsPerJob = "2.5"
	send(m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.JSONEq(t, `{"job_type":"image","job_name":"Dress photo","credits_per_job":2.5}`, b.Payload("POST /credit-catalog"))
	assert.Contains(t, toasts(m), `Catalog entry "Dress photo" saved`)
}

func TestCreditItemForm_Discard(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "credit-catalog")

	send(m, "a")
	m.FormState.CreditItem.JobName = "Reel"
	send(m, "esc")
	require.Equal(t, state.DiscardConfirmMode, m.UiState.Mode())
	assert.Equal(t, "Discard catalog changes?", m.UiState.DiscardContext().Message)

	send(m, "y")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, b.Called("POST /credit-catalog"))
}

func TestCreditItemForm_InvalidCredits(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "credit-catalog")

	send(m, "a")
	m.FormState.CreditItem.JobName = "Reel"
	m.FormState.CreditItem.CreditsPerJob = "-1"
	send(m, "ctrl+s")

	assert.False(t, b.Called("POST /credit-catalog"))
	require.NotEmpty(t, toasts(m))
	assert.Contains(t, toasts(m)[len(toasts(m))-1], "Invalid catalog entry")
}

func TestEditPrompt_KeepsScope(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Set("/prompts", `{"data":[{"prompt_id":"pr1","name":"Studio","prompt_text":"white backdrop","scope":"store","store_id":"s1"}]}`)
	start(m)
	openTab(t, m, "prompts")

	send(m, "e")
	require.Equal(t, state.PromptFormMode, m.UiState.Mode())
	require.NotNil(t, m.FormState.EditingPrompt())
	assert.Equal(t, "white backdrop", m.FormState.Prompt.Text)

	m.FormState.Prompt.Text = "soft light"
	send(m, "ctrl+s")

	assert.JSONEq(t, `{"name":"Studio","prompt_text":"soft light","scope":"store"}`, b.Payload("PATCH /prompts/pr1"))
	assert.Contains(t, toasts(m), `Prompt "Studio" saved`)
}

func TestAddNumber(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "numbers")

	send(m, "e")
	assert.Equal(t, state.NormalMode, m.UiState.Mode(), "numbers are not edited in place")

	send(m, "a")
	require.Equal(t, state.NumberFormMode, m.UiState.Mode())
	m.FormState.Number.StoreID = "s1"
	m.FormState.Number.Phone = "+20 100-123-4567"
	send(m, "ctrl+s")

	assert.JSONEq(t, `{"phone_e164":"+201001234567","is_primary":false}`, b.Payload("POST /stores/s1/numbers"))
	assert.Contains(t, toasts(m), "Number +201001234567 added")
}

func TestAddNumber_InvalidPhone(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "numbers")

	send(m, "a")
	m.FormState.Number.StoreID = "s1"
	m.FormState.Number.Phone = "0100"
	send(m, "ctrl+s")

	assert.False(t, b.Called("POST /stores/s1/numbers"))
	assert.Contains(t, toasts(m)[len(toasts(m))-1], "Invalid number")
}

const usersBody = `{"data":[{"user_id":"u2","email":"sara@example.com","full_name":"Sara","role":"staff","is_active":true}]}`

func TestCreateUser(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Set("/users", usersBody)
	start(m)
	openTab(t, m, "users")

	send(m, "a")
	require.Equal(t, state.UserFormMode, m.UiState.Mode())
	m.FormState.User.Email = "omar@example.com"
	m.FormState.User.FullName = "Omar"
	m.FormState.User.Password = "s3cret"
	send(m, "ctrl+s")

	assert.JSONEq(t,
		`{"email":"omar@example.com","full_name":"Omar","role":"staff","password":"s3cret"}`,
		b.Payload("POST /users"))
	assert.Contains(t, toasts(m), `User "Omar" created`)
}

func TestEditUser_Deactivate(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Set("/users", usersBody)
	start(m)
	openTab(t, m, "users")

	send(m, "e")
	require.Equal(t, state.UserFormMode, m.UiState.Mode())
	require.NotNil(t, m.FormState.EditingUser())
	m.FormState.User.IsActive = false
	send(m, "ctrl+s")

	assert.JSONEq(t, `{"is_active":false}`, b.Payload("PATCH /users/u2"))
	assert.Contains(t, toasts(m), `User "Sara" saved`)
}

func TestEditUser_NoChanges(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Set("/users", usersBody)
	start(m)
	openTab(t, m, "users")

	send(m, "e", "ctrl+s")
	assert.False(t, b.Called("PATCH /users/u2"))
	assert.Contains(t, toasts(m), "Nothing changed")
}

func TestSendManualMessage(t *testing.T) {
	m, b := newTestModel(t, "staff")
	start(m)
	openTab(t, m, "bot-messages")

	send(m, "a")
	require.Equal(t, state.MessageFormMode, m.UiState.Mode())
	m.FormState.Message.StoreID = "s1"
	m.FormState.Message.Message = "Your images are ready"
	send(m, "ctrl+s")

	assert.JSONEq(t, `{"store_id":"s1","message":"Your images are ready"}`, b.Payload("POST /bot-messages/manual"))
	assert.Contains(t, toasts(m), "Message sent to Nile")
}

func TestPaymentLookups_AdminOnly(t *testing.T) {
	m, b := newTestModel(t, "staff")
	b.Set("/payment-method", `{"data":[{"payment_method_id":"pm1","payment_method_name":"Cash"}]}`)
	start(m)
	openTab(t, m, "payment-methods")

	send(m, "a")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	send(m, "e")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Contains(t, toasts(m), "Only admins can change payment lookups")
	assert.False(t, b.Called("PATCH /payment-method/pm1"))
}

func TestRenamePaymentMethod(t *testing.T) {
	m, b := newTestModel(t, "admin")
	b.Set("/payment-method", `{"data":[{"payment_method_id":"pm1","payment_method_name":"Cash"}]}`)
	start(m)
	openTab(t, m, "payment-methods")

	send(m, "e")
	require.Equal(t, state.PaymentMethodFormMode, m.UiState.Mode())
	assert.Equal(t, "pm1", m.FormState.EditingLookup())
	assert.Equal(t, "Cash", m.FormState.Lookup.Name)

	m.FormState.Lookup.Name = "Vodafone Cash"
	send(m, "ctrl+s")

	assert.JSONEq(t, `{"payment_method_name":"Vodafone Cash"}`, b.Payload("PATCH /payment-method/pm1"))
	assert.Contains(t, toasts(m), `Payment method "Vodafone Cash" saved`)
}

func TestAddPaymentFor(t *testing.T) {
	m, b := newTestModel(t, "admin")
	start(m)
	openTab(t, m, "payment-for")

	send(m, "a")
	require.Equal(t, state.PaymentForFormMode, m.UiState.Mode())
	assert.Empty(t, m.FormState.EditingLookup())

	m.FormState.Lookup.Name = "Top up"
	send(m, "ctrl+s")

	assert.JSONEq(t, `{"payment_for_name":"Top up"}`, b.Payload("POST /payment-for"))
	assert.False(t, b.Called("POST /payment-method"))
	assert.Contains(t, toasts(m), `Payment purpose "Top up" saved`)
}

const downloadBody = `{"download_id":"d1","files":[{"url":"https://cdn.example.com/a.jpg","filename":"a.jpg"},{"url":"https://cdn.example.com/b.jpg"}]}`

func TestCreateDownload(t *testing.T) {
	m, b := newTestModel(t, "staff")
	b.Set("POST /downloads", downloadBody)
	start(m)
	openTab(t, m, "downloads")

	send(m, "a")
	require.Equal(t, state.DownloadFormMode, m.UiState.Mode())
	assert.Equal(t, models.DownloadSinceLast, m.FormState.Download.Method)

	m.FormState.Download.StoreID = "s1"
	send(m, "ctrl+s")

	assert.JSONEq(t,
		`{"store_id":"s1","store_name_cache":"Nile","method":"since_last_download_onward"}`,
		b.Payload("POST /downloads"))
	assert.Contains(t, toasts(m), "2 files ready, first: https://cdn.example.com/a.jpg")
}

func TestCreateDownload_SavesLinks(t *testing.T) {
	m, b := newTestModel(t, "staff")
	b.Set("POST /downloads", downloadBody)
	dir := t.TempDir()
	m.Deps.Exporter = &export.Exporter{Dir: dir, Logger: testutil.DiscardLogger()}
	start(m)
	openTab(t, m, "downloads")

	send(m, "a")
	m.FormState.Download.StoreID = "s1"
	send(m, "ctrl+s")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "download-nile")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://cdn.example.com/b.jpg")
	assert.Contains(t, toasts(m), "2 files ready, links saved to "+dir+"/"+entries[0].Name())
}

func TestCreateDownload_RangeNeedsBothEnds(t *testing.T) {
	m, b := newTestModel(t, "staff")
	start(m)
	openTab(t, m, "downloads")

	send(m, "a")
	m.FormState.Download.StoreID = "s1"
	m.FormState.Download.Method = models.DownloadRange
	m.FormState.Download.From = "2026-10-01"
	send(m, "ctrl+s")

	assert.False(t, b.Called("POST /downloads"))
	assert.Contains(t, toasts(m)[len(toasts(m))-1], "Invalid download")
}

func TestErrorLogs_FilterCyclesKind(t *testing.T) {
	m, b := newTestModel(t, "staff")
	b.Set("/errors", `{"data":[{"error_id":"e1","kind":"store_deletion","store_name":"Nile"}]}`)
	start(m)
	openTab(t, m, "errors")
	require.Len(t, m.ErrorLogs.Filtered(), 1)

	send(m, "f")
	assert.Equal(t, models.ErrorKindError, m.ErrorLogs.Kind())
	send(m, "f")
	assert.Equal(t, models.ErrorKindStoreDeletion, m.ErrorLogs.Kind())
	send(m, "f")
	assert.Empty(t, m.ErrorLogs.Kind())
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}
