// Package report prints the dashboard figures outside the TUI
package report

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
	"github.com/thenoetrevino/dressdash/internal/cli/styles"
	"github.com/thenoetrevino/dressdash/internal/models"
)

type kpiResult struct {
	Range        string     `json:"range"`
	From         string     `json:"from,omitempty"`
	To           string     `json:"to,omitempty"`
	KPI          models.KPI `json:"kpi"`
	ExchangeRate float64    `json:"exchange_usd_egp,omitempty"`
}

func egp(v float64) string {
	return humanize.FormatFloat("#,###.##", v) + " EGP"
}

func pct(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func (r kpiResult) Human() string {
	k := r.KPI
	title := r.Range
	if r.From != "" {
		title = fmt.Sprintf("%s to %s", r.From, r.To)
	}

	fields := []styles.Field{
		{Label: "Stores", Value: fmt.Sprintf("%d (+%d new)", k.StoresTotal, k.StoresNew)},
		{Label: "Top ups", Value: egp(k.TransactionsEGP)},
		{Label: "Refunds", Value: egp(k.RefundsEGP)},
		{Label: "Image jobs", Value: fmt.Sprintf("%s, cost %s", humanize.Comma(int64(k.ImageJobsCount)), egp(k.ImageJobsCostEGP))},
		{Label: "Video jobs", Value: fmt.Sprintf("%s, cost %s", humanize.Comma(int64(k.VideoJobsCount)), egp(k.VideoJobsCostEGP))},
		{Label: "Net cashflow", Value: styles.Signed(egp(k.NetCashflowEGP), k.NetCashflowEGP)},
		{Label: "Net profit", Value: styles.Signed(egp(k.NetProfit()), k.NetProfit())},
		{Label: "Error rate", Value: pct(k.ErrorRatePct)},
		{Label: "Active stores", Value: pct(k.ActivePct)},
	}
	if r.ExchangeRate > 0 {
		fields = append(fields, styles.Field{Label: "USD to EGP", Value: humanize.FormatFloat("#,###.##", r.ExchangeRate)})
	}
	return styles.RenderCard(title, styles.RenderFields(fields))
}

// KPICmd returns the kpi command
func KPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Show the dashboard figures for a date range",
		Long: `Show the dashboard figures for a preset or custom date range.

Presets: today, yesterday, this-week, last-week, this-month, last-month.

Examples:
  dressdash kpi --range this-month
  dressdash kpi --from 2025-01-01 --to 2025-01-31 --json
`,
		RunE: handler.Command(handler.Func(runKPI), func(cmd *cobra.Command) error {
			_, _, _, err := handler.NewFlagParser(cmd).ParseRange()
			return err
		}),
	}

	cmd.Flags().String("range", "", "Preset range (default today, custom when dates are given)")
	cmd.Flags().String("from", "", "First day of a custom range (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last day of a custom range (YYYY-MM-DD)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runKPI(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	if err := c.RequireSession(); err != nil {
		return nil, err
	}
	r, from, to, err := handler.NewFlagParser(args.GetCmd()).ParseRange()
	if err != nil {
		return nil, err
	}

	kpi, err := c.App.Client.KPI(ctx, r, from, to)
	if err != nil {
		return nil, err
	}

	result := kpiResult{Range: r.Label(), From: from, To: to, KPI: kpi}
	if common, err := c.App.Client.CommonThings(ctx); err != nil {
		c.App.Logger.Warn("failed to load exchange rate", "error", err)
	} else {
		result.ExchangeRate = common.ExchangeUSDEGP
	}
	return result, nil
}
