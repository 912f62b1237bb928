// Package settings shows and changes the global bot settings
package settings

import (
	"context"
	"errors"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
	"github.com/thenoetrevino/dressdash/internal/cli/styles"
	"github.com/thenoetrevino/dressdash/internal/models"
)

var errAdminOnly = errors.New("only admins can change the exchange rate")

// SettingsCmd returns the settings command with all its subcommands
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Global bot settings",
	}

	cmd.AddCommand(RateCmd())
	cmd.AddCommand(DailySummaryCmd())
	return cmd
}

type rateResult models.CommonThings

func (r rateResult) Human() string {
	updated := r.UpdatedAt
	if t, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
		updated = humanize.Time(t)
	}
	if r.UpdatedByName != "" {
		updated += " by " + r.UpdatedByName
	}
	fields := []styles.Field{
		{Label: "USD to EGP", Value: humanize.FormatFloat("#,###.##", r.ExchangeUSDEGP)},
	}
	if updated != "" {
		fields = append(fields, styles.Field{Label: "Updated", Value: updated})
	}
	return styles.RenderFields(fields)
}

// RateCmd returns the settings rate command
func RateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show or set the USD to EGP exchange rate",
		Long: `Show the USD to EGP exchange rate, or set it with --set (admins only).
The rate prices jobs that did not record their own.

Examples:
  dressdash settings rate
  dressdash settings rate --set 50.5
`,
		RunE: handler.Command(handler.Func(runRate), func(cmd *cobra.Command) error {
			if !cmd.Flags().Changed("set") {
				return nil
			}
			_, err := handler.NewFlagParser(cmd).ParsePositiveFloat("set")
			return err
		}),
	}

	cmd.Flags().Float64("set", 0, "New rate")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runRate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	if err := c.RequireSession(); err != nil {
		return nil, err
	}

	if !args.GetCmd().Flags().Changed("set") {
		common, err := c.App.Client.CommonThings(ctx)
		if err != nil {
			return nil, err
		}
		return rateResult(common), nil
	}

	if !c.App.Session.IsAdmin() {
		return nil, errAdminOnly
	}
	common, err := c.App.Client.SetExchangeRate(ctx, args.GetFloat("set", 0))
	if err != nil {
		return nil, err
	}
	c.App.Logger.Info("updated exchange rate", "exchange_usd_egp", common.ExchangeUSDEGP)
	return rateResult(common), nil
}

type summaryResult struct {
	Triggered bool `json:"triggered"`
}

func (summaryResult) Human() string {
	return styles.SuccessStyle.Render("Daily summaries are being sent")
}

// DailySummaryCmd returns the settings daily-summary command
func DailySummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily-summary",
		Short: "Send today's summary messages to store owners now",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.Func(runDailySummary)),
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func runDailySummary(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	if err := c.RequireSession(); err != nil {
		return nil, err
	}
	if err := c.App.Client.RunDailySummary(ctx); err != nil {
		return nil, err
	}
	return summaryResult{Triggered: true}, nil
}
