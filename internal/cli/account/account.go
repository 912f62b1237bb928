// Package account holds the commands that manage the stored session
package account

import (
	"github.com/thenoetrevino/dressdash/internal/cli/styles"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// identityResult is the session as printed; the token never leaves the
// local database
type identityResult struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	API      string `json:"api"`
}

func newIdentityResult(id models.Identity, api string) identityResult {
	return identityResult{UserID: id.UserID, FullName: id.FullName, Email: id.Email, Role: id.Role, API: api}
}

func (r identityResult) GetID() string { return r.UserID }

func (r identityResult) Human() string {
	name := r.FullName
	if name == "" {
		name = r.Email
	}
	return styles.RenderFields([]styles.Field{
		{Label: "Signed in as", Value: name},
		{Label: "Email", Value: r.Email},
		{Label: "Role", Value: r.Role},
		{Label: "API", Value: r.API},
	})
}
