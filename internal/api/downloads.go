package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// Downloads lists image downloads, for one store when storeID is set
func (c *Client) Downloads(ctx context.Context, storeID string, p ListParams) (Page[models.Download], error) {
	if storeID != "" {
		p.Filters = withFilter(p.Filters, "store_id", storeID)
	}
	return listAll[models.Download](ctx, c, "/downloads", "", p)
}

// CreateDownload asks the backend to bundle a store's images and returns
// the file links
func (c *Client) CreateDownload(ctx context.Context, in models.DownloadInput) (models.DownloadResult, error) {
	return write[models.DownloadResult](ctx, c, http.MethodPost, "/downloads", in)
}

// Errors lists pipeline errors. kind narrows to models.ErrorKindError or
// models.ErrorKindStoreDeletion; empty lists both.
func (c *Client) Errors(ctx context.Context, kind string, p ListParams) (Page[models.ErrorLog], error) {
	if kind != "" {
		p.Filters = withFilter(p.Filters, "kind", kind)
	}
	return listAll[models.ErrorLog](ctx, c, "/errors", "", p)
}

// withFilter returns a copy of filters with key set, leaving the caller's
// map alone
func withFilter(filters map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(filters)+1)
	for k, v := range filters {
		out[k] = v
	}
	out[key] = value
	return out
}
