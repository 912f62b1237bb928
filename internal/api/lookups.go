package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// PaymentFors lists the payment purposes transactions are filed under
func (c *Client) PaymentFors(ctx context.Context, p ListParams) (Page[models.PaymentFor], error) {
	return list[models.PaymentFor](ctx, c, "/payment-for", "", p)
}

// CreatePaymentFor adds a payment purpose
func (c *Client) CreatePaymentFor(ctx context.Context, in models.PaymentForInput) (models.PaymentFor, error) {
	return write[models.PaymentFor](ctx, c, http.MethodPost, "/payment-for", in)
}

// UpdatePaymentFor renames a payment purpose
func (c *Client) UpdatePaymentFor(ctx context.Context, id string, in models.PaymentForInput) (models.PaymentFor, error) {
	return write[models.PaymentFor](ctx, c, http.MethodPatch, "/payment-for/"+url.PathEscape(id), in)
}

// PaymentMethods lists the ways stores pay
func (c *Client) PaymentMethods(ctx context.Context, p ListParams) (Page[models.PaymentMethod], error) {
	return list[models.PaymentMethod](ctx, c, "/payment-method", "", p)
}

// CreatePaymentMethod adds a payment method
func (c *Client) CreatePaymentMethod(ctx context.Context, in models.PaymentMethodInput) (models.PaymentMethod, error) {
	return write[models.PaymentMethod](ctx, c, http.MethodPost, "/payment-method", in)
}

// UpdatePaymentMethod renames a payment method
func (c *Client) UpdatePaymentMethod(ctx context.Context, id string, in models.PaymentMethodInput) (models.PaymentMethod, error) {
	return write[models.PaymentMethod](ctx, c, http.MethodPatch, "/payment-method/"+url.PathEscape(id), in)
}
