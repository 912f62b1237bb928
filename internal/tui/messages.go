package tui

import "github.com/thenoetrevino/dressdash/internal/models"

// LoginResultMsg is sent when a sign in attempt finishes
type LoginResultMsg struct {
	Identity models.Identity
	Err      error
}

// SessionCheckedMsg is sent when the stored session was re-validated on
// start up
type SessionCheckedMsg struct {
	Identity models.Identity
	Err      error
}

// MutationDoneMsg is sent when a create, update or pause call returns.
// Refresh names the pages to refetch on success.
type MutationDoneMsg struct {
	What    string
	Refresh []string
	Err     error
}
