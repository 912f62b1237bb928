package store

import (
	"context"
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
	"github.com/thenoetrevino/dressdash/internal/cli/styles"
	"github.com/thenoetrevino/dressdash/internal/tui/huhforms"
)

var errDeleteCancelled = errors.New("delete cancelled")

type deleteResult struct {
	ID      string `json:"store_id"`
	Deleted bool   `json:"deleted"`
}

func (r deleteResult) GetID() string { return r.ID }

func (r deleteResult) Human() string {
	return styles.SuccessStyle.Render("Deleted") + " store " + r.ID
}

// DeleteCmd returns the store delete command
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a store",
		Long: `Delete a store and everything the backend keeps for it.

Asks for confirmation unless --force is given. --json and --quiet never
prompt, so they need --force.

Examples:
  dressdash store delete --id=store_123
  dressdash store delete --id=store_123 --force --quiet
`,
		RunE: handler.Command(handler.Func(runDelete), parseID),
	}

	cmd.Flags().String("id", "", "Store ID (required)")
	cmd.Flags().Bool("force", false, "Skip the confirmation")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	if err := c.RequireSession(); err != nil {
		return nil, err
	}
	id, err := handler.NewFlagParser(args.GetCmd()).ParseString("id")
	if err != nil {
		return nil, err
	}

	if !args.GetBool("force") {
		if args.GetBool("json") || args.GetBool("quiet") {
			return nil, &cli.UsageError{Message: "--force is required with --json or --quiet"}
		}
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete store %s?", id)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		)).WithTheme(huhforms.CreateDressdashTheme(c.App.Config.ColorScheme))
		err := form.Run()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errDeleteCancelled, err)
		}
		if !confirmed {
			return nil, errDeleteCancelled
		}
	}

	if err := c.App.Client.DeleteStore(ctx, id); err != nil {
		return nil, err
	}
	c.App.Logger.Info("deleted store", "store_id", id)
	return deleteResult{ID: id, Deleted: true}, nil
}
