package account

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
	"github.com/thenoetrevino/dressdash/internal/tui/huhforms"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the admin backend",
		Long: `Sign in and store the session for the dashboard and the other commands.

Missing credentials are asked for interactively.

Examples:
  # Prompt for email and password
  dressdash login

  # Non-interactive, e.g. in a script
  dressdash login --email=ops@example.com --password="$DRESSDASH_PASSWORD" --quiet
`,
		RunE: handler.SimpleCommand(handler.Func(runLogin)),
	}

	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password (prompted when omitted)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runLogin(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	fields := huhforms.LoginFields{
		Email:    args.GetString("email", ""),
		Password: args.GetString("password", ""),
	}

	if fields.Email == "" || fields.Password == "" {
		if args.GetBool("json") || args.GetBool("quiet") {
			return nil, &cli.UsageError{Message: "--email and --password are required with --json or --quiet"}
		}
		form := huhforms.CreateLoginForm(&fields).
			WithTheme(huhforms.CreateDressdashTheme(c.App.Config.ColorScheme))
		if err := form.Run(); err != nil {
			return nil, fmt.Errorf("login cancelled: %w", err)
		}
	}

	email, password := fields.Credentials()
	id, err := c.App.Session.Login(ctx, c.App.Client, email, password)
	if err != nil {
		return nil, err
	}
	return newIdentityResult(id, c.App.Client.BaseURL()), nil
}
