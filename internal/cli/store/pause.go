package store

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
)

// PauseCmd returns the store pause command
func PauseCmd() *cobra.Command {
	return pausedCmd("pause", "Stop processing images for a store", true)
}

// ResumeCmd returns the store resume command
func ResumeCmd() *cobra.Command {
	return pausedCmd("resume", "Resume processing images for a store", false)
}

func pausedCmd(use, short string, paused bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: "  dressdash store " + use + " --id=store_123",
		RunE: handler.Command(handler.Func(func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
			return runSetPaused(ctx, c, args, paused)
		}), parseID),
	}

	cmd.Flags().String("id", "", "Store ID (required)")
	handler.AddOutputFlags(cmd)
	return cmd
}

func parseID(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseString("id")
	return err
}

func runSetPaused(ctx context.Context, c *cli.CLI, args *handler.Arguments, paused bool) (any, error) {
	if err := c.RequireSession(); err != nil {
		return nil, err
	}
	id, err := handler.NewFlagParser(args.GetCmd()).ParseString("id")
	if err != nil {
		return nil, err
	}

	store, err := c.App.Client.SetStorePaused(ctx, id, paused)
	if err != nil {
		return nil, err
	}
	if store.ID == "" {
		store.ID = id
	}
	store.IsPaused = paused
	return newStoreResult(store), nil
}
