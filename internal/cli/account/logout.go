package account

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
)

type logoutResult struct {
	SignedOut bool   `json:"signed_out"`
	UserID    string `json:"user_id,omitempty"`
}

func (r logoutResult) GetID() string { return r.UserID }

func (r logoutResult) Human() string {
	if r.UserID == "" {
		return "Not signed in"
	}
	return "Signed out"
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE:  handler.SimpleCommand(handler.Func(runLogout)),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runLogout(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	id, _ := c.App.Session.Identity()
	if err := c.App.Session.Logout(ctx); err != nil {
		return nil, err
	}
	return logoutResult{SignedOut: true, UserID: id.UserID}, nil
}
