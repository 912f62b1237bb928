package pages

import (
	"context"
	"strconv"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/pricing"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
	"golang.org/x/sync/errgroup"
)

// StoresPage is the stores tab; the application opens the store dialogs
// and the pause confirmation on its selected row
type StoresPage = ListPage[models.Store]

// NewStoresPage lists stores with their effective package resolved
func NewStoresPage(deps *Deps) *StoresPage {
	return NewListPage(Resource[models.Store]{
		Name:    "stores",
		Title:   "Stores",
		Columns: storeColumns(),
		DefaultVisibleColumns: []string{
			"store_number", "store_name", "store_kind", "package", "credit_per_job",
			"img_cr_used", "credit_remaining_egp", "image_jobs_count", "active_status", "is_paused",
		},
		DefaultSort: &datatable.Sort{Key: "store_number", Direction: compare.Asc},
		Fetch: func(ctx context.Context) ([]models.Store, error) {
			return fetchStores(ctx, deps)
		},
		Match: func(s models.Store, q string) bool {
			number := ""
			if s.Number != nil {
				number = strconv.Itoa(*s.Number)
			}
			return contains(q, s.Name, s.Kind, s.Address, s.Package, number)
		},
	}, deps)
}

// fetchStores loads stores, packages and prompts together and resolves the
// package and prompt names. Only the stores call is required.
func fetchStores(ctx context.Context, deps *Deps) ([]models.Store, error) {
	var (
		stores   api.Page[models.Store]
		packages api.Page[models.Package]
		prompts  api.Page[models.Prompt]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stores, err = deps.Client.Stores(gctx, api.ListParams{})
		return err
	})
	g.Go(func() error {
		var err error
		if packages, err = deps.Client.Packages(gctx, api.ListParams{}); err != nil {
			deps.logger().Warn("failed to load packages for stores", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if prompts, err = deps.Client.Prompts(gctx, api.ListParams{}); err != nil {
			deps.logger().Warn("failed to load prompts for stores", "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resolveStores(stores.Items, packages.Items, prompts.Items), nil
}

func resolveStores(stores []models.Store, packages []models.Package, prompts []models.Prompt) []models.Store {
	packageNames := make(map[string]string, len(packages))
	for _, p := range packages {
		packageNames[p.ID] = p.Name
	}
	promptNames := make(map[string]string, len(prompts))
	for _, p := range prompts {
		promptNames[p.ID] = p.Name
	}

	out := make([]models.Store, len(stores))
	for i, s := range stores {
		s.Package = pricing.EffectivePackage(packageNames[s.PackageID], s.ImageJobsCostEGP)
		s.PromptName = promptNames[s.Prompt1ID]
		if s.PromptName == "" {
			s.PromptName = s.Prompt1
		}
		out[i] = s
	}
	return out
}

func storeColumns() []datatable.Column[models.Store] {
	return []datatable.Column[models.Store]{
		{Key: "store_number", Label: "#", Sortable: true, Kind: compare.Number},
		{Key: "store_name", Label: "Store", Sortable: true, Kind: compare.String, Width: 28},
		{Key: "store_kind", Label: "Kind", Sortable: true, Kind: compare.String},
		{Key: "package", Label: "Package", Sortable: true, Kind: compare.String, Render: func(s models.Store) string {
			return tier(s.Package)
		}},
		{Key: "credit_per_job", Label: "Credits/Job", Sortable: true, Kind: compare.Number, Render: func(s models.Store) string {
			if v, ok := s.CreditsPerJob(); ok {
				return money(v)
			}
			return datatable.Placeholder
		}},
		{Key: "img_cr_used", Label: "Image Spend", Sortable: true, Kind: compare.Number, Render: func(s models.Store) string {
			return egp(s.ImageJobsCostEGP)
		}},
		{Key: "credit_remaining_egp", Label: "Balance", Sortable: true, Kind: compare.Number, Render: func(s models.Store) string {
			return signed(s.CreditRemainingEGP)
		}},
		{Key: "remaining_quota_images", Label: "Quota", Sortable: true, Kind: compare.Number},
		{Key: "image_jobs_count", Label: "Images", Sortable: true, Kind: compare.Number},
		{Key: "video_jobs_count", Label: "Videos", Sortable: true, Kind: compare.Number},
		{Key: "whatsapp_numbers_count", Label: "Numbers", Sortable: true, Kind: compare.Number},
		{Key: "total_top_ups_egp", Label: "Top Ups", Sortable: true, Kind: compare.Number, Render: func(s models.Store) string {
			return egp(s.TotalTopUpsEGP)
		}},
		{Key: "refunds_egp", Label: "Refunds", Sortable: true, Kind: compare.Number, Render: func(s models.Store) string {
			return egp(s.RefundsEGP)
		}},
		{Key: "active_status", Label: "Last Active", Sortable: true, Kind: compare.Date, Render: func(s models.Store) string {
			return ago(s.LastActiveAt)
		}},
		{Key: "is_paused", Label: "Status", Sortable: true, Kind: compare.Bool, Render: func(s models.Store) string {
			if s.IsPaused {
				return "Paused"
			}
			return "Active"
		}},
		{Key: "prompt_name", Label: "Prompt", Sortable: true, Kind: compare.String, Width: 24},
		{Key: "output_resolution", Label: "Resolution", Sortable: true, Kind: compare.String},
		{Key: "address", Label: "Address", Width: 30},
		{Key: "registration_date", Label: "Registered", Sortable: true, Kind: compare.Date, Render: func(s models.Store) string {
			return date(s.RegistrationDate)
		}},
	}
}
