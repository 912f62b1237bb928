package pages

import (
	"context"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
)

// PaymentForPage is the payment purposes tab
type PaymentForPage = ListPage[models.PaymentFor]

// NewPaymentForPage lists what transactions can be paid for
func NewPaymentForPage(deps *Deps) *PaymentForPage {
	return NewListPage(Resource[models.PaymentFor]{
		Name:  "payment-for",
		Title: "Payment For",
		Columns: []datatable.Column[models.PaymentFor]{
			{Key: "payment_for_name", Label: "Name", Sortable: true, Kind: compare.String, Width: 32},
			{Key: "created_at", Label: "Created", Sortable: true, Kind: compare.Date, Render: func(p models.PaymentFor) string {
				return date(p.CreatedAt)
			}},
		},
		DefaultSort: &datatable.Sort{Key: "payment_for_name", Direction: compare.Asc},
		Fetch: func(ctx context.Context) ([]models.PaymentFor, error) {
			page, err := deps.Client.PaymentFors(ctx, api.ListParams{})
			return page.Items, err
		},
	}, deps)
}

// PaymentMethodsPage is the payment methods tab
type PaymentMethodsPage = ListPage[models.PaymentMethod]

// NewPaymentMethodsPage lists the ways stores pay
func NewPaymentMethodsPage(deps *Deps) *PaymentMethodsPage {
	return NewListPage(Resource[models.PaymentMethod]{
		Name:  "payment-methods",
		Title: "Payment Methods",
		Columns: []datatable.Column[models.PaymentMethod]{
			{Key: "payment_method_name", Label: "Name", Sortable: true, Kind: compare.String, Width: 32},
			{Key: "created_at", Label: "Created", Sortable: true, Kind: compare.Date, Render: func(p models.PaymentMethod) string {
				return date(p.CreatedAt)
			}},
		},
		DefaultSort: &datatable.Sort{Key: "payment_method_name", Direction: compare.Asc},
		Fetch: func(ctx context.Context) ([]models.PaymentMethod, error) {
			page, err := deps.Client.PaymentMethods(ctx, api.ListParams{})
			return page.Items, err
		},
	}, deps)
}
