package pages

import (
	"context"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
	"github.com/thenoetrevino/dressdash/internal/tui/theme"
)

func amountTotal(label string, count int, total float64) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	return fmt.Sprintf("%s  %d %s · %s", style.Render("Totals"), count, label, egp(total))
}

// NewTransactionsPage lists store top ups
func NewTransactionsPage(deps *Deps) *ListPage[models.Transaction] {
	return NewListPage(Resource[models.Transaction]{
		Name:  "transactions",
		Title: "Transactions",
		Columns: []datatable.Column[models.Transaction]{
			{Key: "txn_date", Label: "Date", Sortable: true, Kind: compare.Date, Render: func(t models.Transaction) string {
				return date(t.TxnDate)
			}},
			{Key: "store_name", Label: "Store", Sortable: true, Kind: compare.String, Width: 24},
			{Key: "payment_for", Label: "For", Sortable: true, Kind: compare.String},
			{Key: "amount_egp", Label: "Amount", Sortable: true, Kind: compare.Number, Render: func(t models.Transaction) string {
				return egp(t.AmountEGP)
			}},
			{Key: "payment_method", Label: "Method", Sortable: true, Kind: compare.String},
			{Key: "received_by", Label: "Received By", Sortable: true, Kind: compare.String},
			{Key: "payment_reference_url", Label: "Reference", Width: 32},
		},
		DefaultVisibleColumns: []string{"txn_date", "store_name", "payment_for", "amount_egp", "payment_method", "received_by"},
		DefaultSort:           &datatable.Sort{Key: "txn_date", Direction: compare.Desc},
		Fetch: func(ctx context.Context) ([]models.Transaction, error) {
			page, err := deps.Client.Transactions(ctx, api.ListParams{})
			return page.Items, err
		},
		Summary: func(rows []models.Transaction) string {
			var total float64
			for _, t := range rows {
				total += t.AmountEGP
			}
			return amountTotal("transactions", len(rows), total)
		},
	}, deps)
}

// NewRefundsPage lists credits returned to stores
func NewRefundsPage(deps *Deps) *ListPage[models.Refund] {
	return NewListPage(Resource[models.Refund]{
		Name:  "refunds",
		Title: "Refunds",
		Columns: []datatable.Column[models.Refund]{
			{Key: "refund_date", Label: "Date", Sortable: true, Kind: compare.Date, Render: func(r models.Refund) string {
				return date(r.RefundDate)
			}},
			{Key: "store_name", Label: "Store", Sortable: true, Kind: compare.String, Width: 24},
			{Key: "job_type", Label: "Job Type", Sortable: true, Kind: compare.String},
			{Key: "job_name", Label: "Job", Sortable: true, Kind: compare.String},
			{Key: "num_of_jobs", Label: "Jobs", Sortable: true, Kind: compare.Number},
			{Key: "credit_per_job", Label: "Credits/Job", Sortable: true, Kind: compare.Number, Render: func(r models.Refund) string {
				return money(r.CreditPerJob)
			}},
			{Key: "amount_egp", Label: "Amount", Sortable: true, Kind: compare.Number, Render: func(r models.Refund) string {
				return egp(r.AmountEGP)
			}},
			{Key: "reason", Label: "Reason", Width: 32},
			{Key: "received_by", Label: "By", Sortable: true, Kind: compare.String},
		},
		DefaultSort: &datatable.Sort{Key: "refund_date", Direction: compare.Desc},
		Fetch: func(ctx context.Context) ([]models.Refund, error) {
			page, err := deps.Client.Refunds(ctx, api.ListParams{})
			return page.Items, err
		},
		Summary: func(rows []models.Refund) string {
			var total float64
			for _, r := range rows {
				total += r.AmountEGP
			}
			return amountTotal("refunds", len(rows), total)
		},
	}, deps)
}
