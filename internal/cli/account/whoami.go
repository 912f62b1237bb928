package account

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
)

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in operator",
		Long: `Show the stored session. With --check the token is validated against
the backend first and a rejected session is cleared.`,
		RunE: handler.SimpleCommand(handler.Func(runWhoami)),
	}

	cmd.Flags().Bool("check", false, "Validate the session with the backend")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runWhoami(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	if err := c.RequireSession(); err != nil {
		return nil, err
	}

	id, _ := c.App.Session.Identity()
	if args.GetBool("check") {
		var err error
		if id, err = c.App.Session.Refresh(ctx, c.App.Client); err != nil {
			return nil, err
		}
	}
	return newIdentityResult(id, c.App.Client.BaseURL()), nil
}
