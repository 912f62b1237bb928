package pages

import (
	"context"
	"strings"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
)

// CreditCatalogPage is the credit catalog tab
type CreditCatalogPage = ListPage[models.CreditItem]

// NewCreditCatalogPage lists the credit price of each job kind
func NewCreditCatalogPage(deps *Deps) *CreditCatalogPage {
	return NewListPage(Resource[models.CreditItem]{
		Name:  "credit-catalog",
		Title: "Credit Catalog",
		Columns: []datatable.Column[models.CreditItem]{
			{Key: "job_type", Label: "Job Type", Sortable: true, Kind: compare.String},
			{Key: "job_name", Label: "Job", Sortable: true, Kind: compare.String},
			{Key: "credits_per_job", Label: "Credits/Job", Sortable: true, Kind: compare.Number, Render: func(c models.CreditItem) string {
				return money(c.CreditsPerJob)
			}},
			{Key: "created_at", Label: "Created", Sortable: true, Kind: compare.Date, Render: func(c models.CreditItem) string {
				return date(c.CreatedAt)
			}},
		},
		Fetch: func(ctx context.Context) ([]models.CreditItem, error) {
			page, err := deps.Client.CreditCatalog(ctx, api.ListParams{})
			return page.Items, err
		},
	}, deps)
}

// PromptsPage is the prompts tab
type PromptsPage = ListPage[models.Prompt]

// NewPromptsPage lists generation prompts
func NewPromptsPage(deps *Deps) *PromptsPage {
	return NewListPage(Resource[models.Prompt]{
		Name:  "prompts",
		Title: "Prompts",
		Columns: []datatable.Column[models.Prompt]{
			{Key: "name", Label: "Name", Sortable: true, Kind: compare.String, Width: 24},
			{Key: "scope", Label: "Scope", Sortable: true, Kind: compare.String},
			{Key: "store_count", Label: "Stores", Sortable: true, Kind: compare.Number},
			{Key: "prompt_text", Label: "Prompt", Width: 48, Render: func(p models.Prompt) string {
				return datatable.Format(strings.Join(strings.Fields(p.PromptText), " "))
			}},
			{Key: "updated_at", Label: "Updated", Sortable: true, Kind: compare.Date, Render: func(p models.Prompt) string {
				return ago(p.UpdatedAt)
			}},
		},
		DefaultSort: &datatable.Sort{Key: "name", Direction: compare.Asc},
		Fetch: func(ctx context.Context) ([]models.Prompt, error) {
			page, err := deps.Client.Prompts(ctx, api.ListParams{})
			return page.Items, err
		},
	}, deps)
}

// PackagesPage is the packages tab; the application opens the package
// dialogs on its selected row
type PackagesPage = ListPage[models.Package]

// NewPackagesPage lists packages
func NewPackagesPage(deps *Deps) *PackagesPage {
	return NewListPage(Resource[models.Package]{
		Name:  "packages",
		Title: "Packages",
		Columns: []datatable.Column[models.Package]{
			{Key: "name", Label: "Name", Sortable: true, Kind: compare.String, Render: func(p models.Package) string {
				return tier(p.Name)
			}},
			{Key: "price_per_dress", Label: "Price/Dress", Sortable: true, Kind: compare.Number, Render: func(p models.Package) string {
				return money(p.PricePerDress) + " " + p.Currency
			}},
			{Key: "images_per_dress", Label: "Images/Dress", Sortable: true, Kind: compare.Number},
			{Key: "use_consistent_background", Label: "Same Background", Sortable: true, Kind: compare.Bool, Render: func(p models.Package) string {
				return yesNo(p.UseConsistentBackground)
			}},
			{Key: "prompts_order", Label: "Prompts", Width: 40},
			{Key: "updated_at", Label: "Updated", Sortable: true, Kind: compare.Date, Render: func(p models.Package) string {
				return ago(p.UpdatedAt)
			}},
		},
		DefaultSort: &datatable.Sort{Key: "price_per_dress", Direction: compare.Asc},
		Fetch: func(ctx context.Context) ([]models.Package, error) {
			page, err := deps.Client.Packages(ctx, api.ListParams{})
			return page.Items, err
		},
	}, deps)
}
