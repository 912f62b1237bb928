package pages

import (
	"context"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
	"golang.org/x/sync/errgroup"
)

// DownloadsPage is the downloads tab; the application opens the new
// download dialog from it
type DownloadsPage = ListPage[models.Download]

// NewDownloadsPage lists image downloads with store and operator names
// resolved
func NewDownloadsPage(deps *Deps) *DownloadsPage {
	return NewListPage(Resource[models.Download]{
		Name:  "downloads",
		Title: "Downloads",
		Columns: []datatable.Column[models.Download]{
			{Key: "store", Label: "Store", Sortable: true, Kind: compare.String, Width: 28},
			{Key: "most_recent_job", Label: "Most Recent Job", Sortable: true, Kind: compare.Date, Render: func(d models.Download) string {
				return date(d.MostRecentJob)
			}},
			{Key: "last_download_at", Label: "Last Download", Sortable: true, Kind: compare.Date, Render: func(d models.Download) string {
				return date(d.LastDownloadAt)
			}},
			{Key: "method", Label: "Method", Sortable: true, Kind: compare.String, Render: downloadMethod},
			{Key: "triggered_by", Label: "Triggered By", Sortable: true, Kind: compare.String},
			{Key: "created_at", Label: "Created", Sortable: true, Kind: compare.Date, Render: func(d models.Download) string {
				return date(d.CreatedAt)
			}},
		},
		DefaultSort: &datatable.Sort{Key: "created_at", Direction: compare.Desc},
		Fetch: func(ctx context.Context) ([]models.Download, error) {
			return fetchDownloads(ctx, deps)
		},
	}, deps)
}

// fetchDownloads loads downloads, stores and users together. Only the
// downloads call is required; staff cannot list users.
func fetchDownloads(ctx context.Context, deps *Deps) ([]models.Download, error) {
	var (
		downloads api.Page[models.Download]
		stores    api.Page[models.Store]
		users     api.Page[models.User]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		downloads, err = deps.Client.Downloads(gctx, "", api.ListParams{})
		return err
	})
	g.Go(func() error {
		var err error
		if stores, err = deps.Client.Stores(gctx, api.ListParams{}); err != nil {
			deps.logger().Warn("failed to load stores for downloads", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if users, err = deps.Client.Users(gctx, api.ListParams{}); err != nil {
			deps.logger().Debug("no user names for downloads", "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resolveDownloads(downloads.Items, stores.Items, users.Items), nil
}

func resolveDownloads(downloads []models.Download, stores []models.Store, users []models.User) []models.Download {
	storeNames := make(map[string]string, len(stores))
	for _, s := range stores {
		storeNames[s.ID] = s.Name
	}
	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.FullName
	}

	out := make([]models.Download, len(downloads))
	for i, d := range downloads {
		d.StoreName = storeNames[d.StoreID]
		d.TriggeredByName = userNames[d.TriggeredBy]
		out[i] = d
	}
	return out
}

// DownloadMethodLabel names a download method the way operators say it
func DownloadMethodLabel(method string) string {
	switch method {
	case models.DownloadSinceLast:
		return "Since last download"
	case models.DownloadAll:
		return "Everything"
	case models.DownloadRange:
		return "Custom range"
	}
	return datatable.Format(method)
}

func downloadMethod(d models.Download) string {
	label := DownloadMethodLabel(d.Method)
	if d.Method == models.DownloadRange && (d.FromTS != "" || d.ToTS != "") {
		label += " " + date(d.FromTS) + " → " + date(d.ToTS)
	}
	return label
}
