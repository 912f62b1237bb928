package huhforms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dressdash/internal/models"
)

func TestCreditItemFields(t *testing.T) {
	f := NewCreditItemFields()
	f.JobName = " Studio "
	f.CreditsPerJob = "0"

	in, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, models.CreditItemInput{JobType: models.JobTypeImage, JobName: "Studio", CreditsPerJob: 0}, in)

	f.CreditsPerJob = "-2"
	_, err = f.Input()
	assert.ErrorIs(t, err, errNegative)

	back := CreditItemFieldsFrom(models.CreditItem{JobName: "Reel", CreditsPerJob: 2.5})
	assert.Equal(t, models.JobTypeImage, back.JobType)
	assert.Equal(t, "2.5", back.CreditsPerJob)
}

func TestPromptFields(t *testing.T) {
	in, err := PromptFields{Name: "Studio", Text: "  white backdrop\n"}.Input()
	require.NoError(t, err)
	assert.Equal(t, models.PromptInput{Name: "Studio", PromptText: "white backdrop", Scope: models.ScopeGlobal}, in)

	_, err = PromptFields{Name: "Studio"}.Input()
	assert.ErrorIs(t, err, models.ErrRequiredField)
}

func TestLookupFields(t *testing.T) {
	name, err := NewLookupFields(" InstaPay ").Value()
	require.NoError(t, err)
	assert.Equal(t, "InstaPay", name)

	_, err = NewLookupFields("").Value()
	assert.ErrorIs(t, err, errRequired)
}

func TestPhoneNumberFields(t *testing.T) {
	f := NewPhoneNumberFields()
	f.StoreID = "s1"
	f.Phone = " +20 100-123-4567 "

	in, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, "+201001234567", in.PhoneE164)

	f.Phone = "0100 123 4567"
	_, err = f.Input()
	assert.ErrorIs(t, err, models.ErrInvalidPhone)

	f.Phone, f.StoreID = "+201001234567", ""
	_, err = f.Input()
	assert.ErrorIs(t, err, models.ErrRequiredField)
}

func TestUserFields_Input(t *testing.T) {
	f := NewUserFields()
	f.Email, f.FullName = " mona@shop.eg ", "Mona"

	_, err := f.Input()
	assert.ErrorIs(t, err, models.ErrRequiredField, "password is required for new users")

	f.Password = "secret"
	in, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, models.UserInput{Email: "mona@shop.eg", FullName: "Mona", Role: models.RoleStaff, Password: "secret"}, in)
}

func TestUserFields_Patch(t *testing.T) {
	orig := models.User{ID: "u2", Email: "a@b.eg", FullName: "Ali", Role: models.RoleStaff, IsActive: true}

	p, err := UserFieldsFrom(orig).Patch(orig)
	require.NoError(t, err)
	assert.Equal(t, models.UserPatch{}, p)

	f := UserFieldsFrom(orig)
	f.Role = models.RoleAdmin
	f.IsActive = false
	f.Password = "new"
	p, err = f.Patch(orig)
	require.NoError(t, err)
	require.NotNil(t, p.Role)
	assert.Equal(t, models.RoleAdmin, *p.Role)
	require.NotNil(t, p.IsActive)
	assert.False(t, *p.IsActive)
	require.NotNil(t, p.Password)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.FullName)
}

func TestManualMessageFields(t *testing.T) {
	in, err := ManualMessageFields{StoreID: "s1", Message: " Your images are ready \n"}.Input()
	require.NoError(t, err)
	assert.Equal(t, "Your images are ready", in.Message)

	_, err = ManualMessageFields{Message: "hi"}.Input()
	assert.ErrorIs(t, err, models.ErrRequiredField)
}

func TestDownloadFields(t *testing.T) {
	f := NewDownloadFields()
	f.StoreID = "s1"

	in, err := f.Input("Nile")
	require.NoError(t, err)
	assert.Equal(t, models.DownloadInput{StoreID: "s1", StoreNameCache: "Nile", Method: models.DownloadSinceLast}, in)

	f.Method = models.DownloadRange
	_, err = f.Input("Nile")
	assert.ErrorIs(t, err, errRequired)

	f.From, f.To = "2024-05-01", "2024-05-31 18:30"
	in, err = f.Input("Nile")
	require.NoError(t, err)
	from, err := time.Parse(time.RFC3339, in.FromTS)
	require.NoError(t, err)
	assert.True(t, from.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)))
	to, err := time.Parse(time.RFC3339, in.ToTS)
	require.NoError(t, err)
	assert.True(t, to.Equal(time.Date(2024, 5, 31, 18, 30, 0, 0, time.Local)))

	f.From, f.To = "2024-06-01", "2024-05-01"
	_, err = f.Input("Nile")
	assert.ErrorIs(t, err, errOrder)

	f.From = "yesterday"
	_, err = f.Input("Nile")
	assert.ErrorIs(t, err, errTime)
}

func TestStoreOptions(t *testing.T) {
	stores := []models.Store{{ID: "s2", Name: "zamalek"}, {ID: "s1", Name: "Nile"}, {ID: "s3"}}
	opts := StoreOptions(stores)

	require.Len(t, opts, 4)
	assert.Equal(t, "", opts[0].Value)
	assert.Equal(t, []string{"s3", "s1", "s2"}, []string{opts[1].Value, opts[2].Value, opts[3].Value})
	assert.Equal(t, "Nile", StoreName(stores, "s1"))
	assert.Equal(t, "", StoreName(stores, "nope"))
}

func TestDialogForms_Build(t *testing.T) {
	stores := []models.Store{{ID: "s1", Name: "Nile"}}
	label := func(m string) string { return m }

	credit, prompt, lookup := NewCreditItemFields(), NewPromptFields(), NewLookupFields("")
	number, user, msg, download := NewPhoneNumberFields(), NewUserFields(), NewManualMessageFields(), NewDownloadFields()

	assert.NotNil(t, CreateCreditItemForm(&credit, false))
	assert.NotNil(t, CreatePromptForm(&prompt, true))
	assert.NotNil(t, CreateLookupForm(&lookup, "payment method", false))
	assert.NotNil(t, CreatePhoneNumberForm(&number, stores))
	assert.NotNil(t, CreateUserForm(&user, false))
	assert.NotNil(t, CreateUserForm(&user, true))
	assert.NotNil(t, CreateManualMessageForm(&msg, stores))
	assert.NotNil(t, CreateDownloadForm(&download, stores, label))
}
