package auth

import "errors"

var (
	// ErrMissingCredentials indicates an empty email or password
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrNotSignedIn indicates an operation that needs a token ran without one
	ErrNotSignedIn = errors.New("not signed in")

	// ErrSessionExpired indicates the backend rejected the stored token
	ErrSessionExpired = errors.New("session expired, please sign in again")
)
