package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// PhoneNumberFields are the values bound to the add number form
type PhoneNumberFields struct {
	StoreID   string
	Phone     string
	Owner     string
	IsPrimary bool
	Confirm   bool
}

// NewPhoneNumberFields returns an empty number
func NewPhoneNumberFields() PhoneNumberFields {
	return PhoneNumberFields{Confirm: true}
}

// Input converts the fields into a create payload. Spaces and dashes
// people paste with numbers are dropped.
func (f PhoneNumberFields) Input() (models.PhoneNumberInput, error) {
	phone := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(f.Phone))
	in := models.PhoneNumberInput{
		StoreID:   f.StoreID,
		PhoneE164: phone,
		OwnerName: strings.TrimSpace(f.Owner),
		IsPrimary: f.IsPrimary,
	}
	return in, in.Validate()
}

// CreatePhoneNumberForm creates the add WhatsApp number form
func CreatePhoneNumberForm(f *PhoneNumberFields, stores []models.Store) *huh.Form {
	return newForm(
		storeSelect(&f.StoreID, stores),

		huh.NewInput().
			Key("phone").
			Title("Phone (E.164)").
			Placeholder("+201001234567").
			Validate(required).
			Value(&f.Phone),

		huh.NewInput().
			Key("owner").
			Title("Owner Name (optional)").
			Value(&f.Owner),

		huh.NewConfirm().
			Key("is_primary").
			Title("Primary number for this store?").
			Affirmative("Yes").
			Negative("No").
			Value(&f.IsPrimary),

		confirmField("Add this number?", &f.Confirm),
	)
}

// UserFields are the values bound to the user form. Password stays empty
// when editing unless the operator sets a new one.
type UserFields struct {
	Email    string
	FullName string
	Role     string
	IsActive bool
	Password string
	Confirm  bool
}

// NewUserFields returns the defaults for a new operator
func NewUserFields() UserFields {
	return UserFields{Role: models.RoleStaff, IsActive: true, Confirm: true}
}

// UserFieldsFrom prefills the form with an existing operator
func UserFieldsFrom(u models.User) UserFields {
	return UserFields{
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
		Confirm:  true,
	}
}

// Input converts the fields into a create payload
func (f UserFields) Input() (models.UserInput, error) {
	in := models.UserInput{
		Email:    strings.TrimSpace(f.Email),
		FullName: strings.TrimSpace(f.FullName),
		Role:     f.Role,
		Password: f.Password,
	}
	return in, in.Validate()
}

// Patch returns only the fields that differ from orig
func (f UserFields) Patch(orig models.User) (models.UserPatch, error) {
	var p models.UserPatch
	if email := strings.TrimSpace(f.Email); email != orig.Email {
		p.Email = &email
	}
	if name := strings.TrimSpace(f.FullName); name != orig.FullName {
		p.FullName = &name
	}
	if f.Role != orig.Role {
		role := f.Role
		p.Role = &role
	}
	if f.IsActive != orig.IsActive {
		active := f.IsActive
		p.IsActive = &active
	}
	if f.Password != "" {
		pw := f.Password
		p.Password = &pw
	}
	return p, p.Validate()
}

// CreateUserForm creates a huh form for adding/editing an operator
func CreateUserForm(f *UserFields, editing bool) *huh.Form {
	password := huh.NewInput().
		Key("password").
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&f.Password)
	if editing {
		password = password.Description("Leave empty to keep the current password")
	} else {
		password = password.Validate(required)
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("full_name").
			Title("Full Name").
			Validate(required).
			Value(&f.FullName),

		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("name@example.com").
			Validate(required).
			Value(&f.Email),

		huh.NewSelect[string]().
			Key("role").
			Title("Role").
			Options(
				huh.NewOption("Staff", models.RoleStaff),
				huh.NewOption("Admin", models.RoleAdmin),
			).
			Value(&f.Role),
	}
	if editing {
		fields = append(fields, huh.NewConfirm().
			Key("is_active").
			Title("Active?").
			Affirmative("Yes").
			Negative("No").
			Value(&f.IsActive))
	}
	fields = append(fields, password, confirmField(confirmTitle("user", editing), &f.Confirm))
	return newForm(fields...)
}

// ManualMessageFields are the values bound to the manual bot message form
type ManualMessageFields struct {
	StoreID string
	Message string
	Confirm bool
}

// NewManualMessageFields returns an empty message
func NewManualMessageFields() ManualMessageFields {
	return ManualMessageFields{Confirm: true}
}

// Input converts the fields into a send payload
func (f ManualMessageFields) Input() (models.ManualMessageInput, error) {
	in := models.ManualMessageInput{StoreID: f.StoreID, Message: strings.TrimSpace(f.Message)}
	return in, in.Validate()
}

// CreateManualMessageForm creates the form that messages a store's owner
func CreateManualMessageForm(f *ManualMessageFields, stores []models.Store) *huh.Form {
	return newForm(
		storeSelect(&f.StoreID, stores),

		huh.NewText().
			Key("message").
			Title("Message").
			CharLimit(1000).
			Lines(5).
			Validate(required).
			Value(&f.Message),

		confirmField("Send this message on WhatsApp?", &f.Confirm),
	)
}
