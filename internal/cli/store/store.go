// Package store holds the store maintenance commands
package store

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli/styles"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// StoreCmd returns the store command with all its subcommands
func StoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Pause, resume or delete stores",
	}

	cmd.AddCommand(PauseCmd())
	cmd.AddCommand(ResumeCmd())
	cmd.AddCommand(DeleteCmd())
	return cmd
}

type storeResult struct {
	ID     string `json:"store_id"`
	Name   string `json:"store_name"`
	Paused bool   `json:"is_paused"`
}

func newStoreResult(s models.Store) storeResult {
	return storeResult{ID: s.ID, Name: s.Name, Paused: s.IsPaused}
}

func (r storeResult) GetID() string { return r.ID }

func (r storeResult) Human() string {
	state := styles.PositiveStyle.Render("running")
	if r.Paused {
		state = styles.NegativeStyle.Render("paused")
	}
	return styles.RenderFields([]styles.Field{
		{Label: "Store", Value: r.Name},
		{Label: "ID", Value: r.ID},
		{Label: "State", Value: state},
	})
}
