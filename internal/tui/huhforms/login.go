package huhforms

import (
	"strings"

	"charm.land/huh/v2"
)

// LoginFields are the values bound to the login form
type LoginFields struct {
	Email    string
	Password string
}

// Credentials returns the trimmed email and the password as typed
func (f LoginFields) Credentials() (string, string) {
	return strings.TrimSpace(f.Email), f.Password
}

// CreateLoginForm creates the sign in form
func CreateLoginForm(f *LoginFields) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(required).
			Value(&f.Email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required).
			Value(&f.Password),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
