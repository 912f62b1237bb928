package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/huhforms"
)

// FormState manages all form-related state for the application.
// Only one dialog is open at a time, so a single huh form is kept along
// with the values bound to each kind of dialog.
type FormState struct {
	form *huh.Form

	// Field values the forms bind to. They live here so their addresses
	// stay stable while a form is open.
	Login      huhforms.LoginFields
	Store      huhforms.StoreFields
	Package    huhforms.PackageFields
	Rate       huhforms.RateFields
	CreditItem huhforms.CreditItemFields
	Prompt     huhforms.PromptFields
	Number     huhforms.PhoneNumberFields
	User       huhforms.UserFields
	Message    huhforms.ManualMessageFields
	Lookup     huhforms.LookupFields
	Download   huhforms.DownloadFields

	// snapshot holds the values the form opened with
	snapshot any

	editingStore      *models.Store
	editingPackage    *models.Package
	editingCreditItem *models.CreditItem
	editingPrompt     *models.Prompt
	editingUser       *models.User
	pauseTarget       *models.Store

	// editingLookup is the id of the payment purpose or method being
	// renamed, empty when adding
	editingLookup string
}

// NewFormState creates a new FormState with no dialog open.
func NewFormState() *FormState {
	return &FormState{}
}

// Form returns the open huh form, nil when none is open.
func (s *FormState) Form() *huh.Form {
	return s.form
}

// SetForm replaces the open huh form.
func (s *FormState) SetForm(form *huh.Form) {
	s.form = form
}

// IsFormActive returns true if a form is currently open.
func (s *FormState) IsFormActive() bool {
	return s.form != nil
}

// --- Opening dialogs ---

// OpenLogin resets the login fields, keeping the last email.
func (s *FormState) OpenLogin(theme huh.Theme) {
	s.Login = huhforms.LoginFields{Email: s.Login.Email}
	s.form = huhforms.CreateLoginForm(&s.Login).WithTheme(theme)
	s.snapshot = s.Login
}

// OpenStore opens the store dialog, prefilled when editing is non-nil.
func (s *FormState) OpenStore(theme huh.Theme, editing *models.Store, packages []models.Package) {
	s.editingStore = editing
	if editing != nil {
		s.Store = huhforms.StoreFieldsFrom(*editing)
	} else {
		s.Store = huhforms.NewStoreFields()
	}
	s.form = huhforms.CreateStoreForm(&s.Store, packages, editing != nil).WithTheme(theme)
	s.snapshot = s.Store
}

// OpenPackage opens the package dialog, prefilled when editing is non-nil.
func (s *FormState) OpenPackage(theme huh.Theme, editing *models.Package) {
	s.editingPackage = editing
	if editing != nil {
		s.Package = huhforms.PackageFieldsFrom(*editing)
	} else {
		s.Package = huhforms.NewPackageFields()
	}
	s.form = huhforms.CreatePackageForm(&s.Package, editing != nil).WithTheme(theme)
	s.snapshot = s.Package
}

// OpenRate opens the exchange rate dialog with the current rate.
func (s *FormState) OpenRate(theme huh.Theme, rate float64) {
	s.Rate = huhforms.RateFieldsFrom(rate)
	s.form = huhforms.CreateRateForm(&s.Rate).WithTheme(theme)
	s.snapshot = s.Rate
}

// OpenCreditItem opens the credit catalog dialog, prefilled when editing
// is non-nil.
func (s *FormState) OpenCreditItem(theme huh.Theme, editing *models.CreditItem) {
	s.editingCreditItem = editing
	if editing != nil {
		s.CreditItem = huhforms.CreditItemFieldsFrom(*editing)
	} else {
		s.CreditItem = huhforms.NewCreditItemFields()
	}
	s.form = huhforms.CreateCreditItemForm(&s.CreditItem, editing != nil).WithTheme(theme)
	s.snapshot = s.CreditItem
}

// OpenPrompt opens the prompt dialog, prefilled when editing is non-nil.
func (s *FormState) OpenPrompt(theme huh.Theme, editing *models.Prompt) {
	s.editingPrompt = editing
	if editing != nil {
		s.Prompt = huhforms.PromptFieldsFrom(*editing)
	} else {
		s.Prompt = huhforms.NewPromptFields()
	}
	s.form = huhforms.CreatePromptForm(&s.Prompt, editing != nil).WithTheme(theme)
	s.snapshot = s.Prompt
}

// OpenNumber opens the add WhatsApp number dialog.
func (s *FormState) OpenNumber(theme huh.Theme, stores []models.Store) {
	s.Number = huhforms.NewPhoneNumberFields()
	s.form = huhforms.CreatePhoneNumberForm(&s.Number, stores).WithTheme(theme)
	s.snapshot = s.Number
}

// OpenUser opens the user dialog, prefilled when editing is non-nil.
func (s *FormState) OpenUser(theme huh.Theme, editing *models.User) {
	s.editingUser = editing
	if editing != nil {
		s.User = huhforms.UserFieldsFrom(*editing)
	} else {
		s.User = huhforms.NewUserFields()
	}
	s.form = huhforms.CreateUserForm(&s.User, editing != nil).WithTheme(theme)
	s.snapshot = s.User
}

// OpenMessage opens the manual bot message dialog.
func (s *FormState) OpenMessage(theme huh.Theme, stores []models.Store) {
	s.Message = huhforms.NewManualMessageFields()
	s.form = huhforms.CreateManualMessageForm(&s.Message, stores).WithTheme(theme)
	s.snapshot = s.Message
}

// OpenLookup opens the name dialog of a payment purpose or method. id and
// name are empty when adding.
func (s *FormState) OpenLookup(theme huh.Theme, thing, id, name string) {
	s.editingLookup = id
	s.Lookup = huhforms.NewLookupFields(name)
	s.form = huhforms.CreateLookupForm(&s.Lookup, thing, id != "").WithTheme(theme)
	s.snapshot = s.Lookup
}

// OpenDownload opens the new download dialog.
func (s *FormState) OpenDownload(theme huh.Theme, stores []models.Store, methodLabel func(string) string) {
	s.Download = huhforms.NewDownloadFields()
	s.form = huhforms.CreateDownloadForm(&s.Download, stores, methodLabel).WithTheme(theme)
	s.snapshot = s.Download
}

// --- Change detection ---

func (s *FormState) current() any {
	switch s.snapshot.(type) {
	case huhforms.LoginFields:
		return s.Login
	case huhforms.StoreFields:
		return s.Store
	case huhforms.PackageFields:
		return s.Package
	case huhforms.RateFields:
		return s.Rate
	case huhforms.CreditItemFields:
		return s.CreditItem
	case huhforms.PromptFields:
		return s.Prompt
	case huhforms.PhoneNumberFields:
		return s.Number
	case huhforms.UserFields:
		return s.User
	case huhforms.ManualMessageFields:
		return s.Message
	case huhforms.LookupFields:
		return s.Lookup
	case huhforms.DownloadFields:
		return s.Download
	}
	return nil
}

// HasChanges reports whether the open form differs from what it opened with.
func (s *FormState) HasChanges() bool {
	if s.form == nil || s.snapshot == nil {
		return false
	}
	return s.current() != s.snapshot
}

// --- Editing targets ---

// EditingStore returns the store being edited, nil when creating.
func (s *FormState) EditingStore() *models.Store {
	return s.editingStore
}

// EditingPackage returns the package being edited, nil when creating.
func (s *FormState) EditingPackage() *models.Package {
	return s.editingPackage
}

// EditingCreditItem returns the catalog entry being edited, nil when
// creating.
func (s *FormState) EditingCreditItem() *models.CreditItem {
	return s.editingCreditItem
}

// EditingPrompt returns the prompt being edited, nil when creating.
func (s *FormState) EditingPrompt() *models.Prompt {
	return s.editingPrompt
}

// EditingUser returns the operator being edited, nil when creating.
func (s *FormState) EditingUser() *models.User {
	return s.editingUser
}

// EditingLookup returns the id of the payment purpose or method being
// renamed, empty when adding.
func (s *FormState) EditingLookup() string {
	return s.editingLookup
}

// PauseTarget returns the store waiting on the pause confirmation.
func (s *FormState) PauseTarget() *models.Store {
	return s.pauseTarget
}

// SetPauseTarget sets the store the pause confirmation acts on.
func (s *FormState) SetPauseTarget(store *models.Store) {
	s.pauseTarget = store
}

// Clear closes the open form and forgets its targets. Login email is kept
// for the next sign in.
func (s *FormState) Clear() {
	s.form = nil
	s.snapshot = nil
	s.editingStore = nil
	s.editingPackage = nil
	s.editingCreditItem = nil
	s.editingPrompt = nil
	s.editingUser = nil
	s.editingLookup = ""
	s.pauseTarget = nil
	s.Login.Password = ""
	s.User.Password = ""
}
