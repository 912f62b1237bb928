package pages

import (
	"context"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/pricing"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
	"github.com/thenoetrevino/dressdash/internal/tui/theme"
	"golang.org/x/sync/errgroup"
)

// JobRow is an image job priced against its store
type JobRow struct {
	models.ImageJob
	StoreName string
	Cost      pricing.Cost
}

func (r JobRow) Field(key string) any {
	switch key {
	case "store_name":
		return r.StoreName
	case "package":
		return r.Cost.Package
	case "credits":
		return r.Cost.CreditsPerJob
	case "gemini_usd":
		return r.Cost.GeminiUSD
	case "fx":
		return r.Cost.USDToEGP
	case "cost_egp":
		return r.Cost.CostEGP
	case "profit_egp":
		return r.Cost.ProfitEGP
	}
	return r.ImageJob.Field(key)
}

// NewImageJobsPage lists image jobs with their cost and profit
func NewImageJobsPage(deps *Deps) *ListPage[JobRow] {
	return NewListPage(Resource[JobRow]{
		Name:    "image-jobs",
		Title:   "Image Jobs",
		Columns: jobColumns(),
		DefaultVisibleColumns: []string{
			"display_job_id", "store_name", "timestamp", "package", "status",
			"processing_time_sec", "credits", "cost_egp", "profit_egp",
		},
		DefaultSort: &datatable.Sort{Key: "timestamp", Direction: compare.Desc},
		Fetch: func(ctx context.Context) ([]JobRow, error) {
			return fetchJobs(ctx, deps)
		},
		Match: func(r JobRow, q string) bool {
			return contains(q, r.DisplayID(), r.StoreName, r.StoreID, r.Cost.Package, r.ErrorCode, r.PhoneID)
		},
		Summary: jobTotals,
	}, deps)
}

// fetchJobs loads jobs, stores and the exchange rate together. Without
// stores or a rate the jobs are still priced from their own fields.
func fetchJobs(ctx context.Context, deps *Deps) ([]JobRow, error) {
	var (
		jobs   api.Page[models.ImageJob]
		stores api.Page[models.Store]
		common models.CommonThings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = deps.Client.ImageJobs(gctx, api.ListParams{})
		return err
	})
	g.Go(func() error {
		var err error
		if stores, err = deps.Client.Stores(gctx, api.ListParams{}); err != nil {
			deps.logger().Warn("failed to load stores for image jobs", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if common, err = deps.Client.CommonThings(gctx); err != nil {
			deps.logger().Warn("failed to load exchange rate", "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return priceJobs(jobs.Items, stores.Items, common.ExchangeUSDEGP), nil
}

func priceJobs(jobs []models.ImageJob, stores []models.Store, rate float64) []JobRow {
	byID := make(map[string]*models.Store, len(stores))
	for i := range stores {
		byID[stores[i].ID] = &stores[i]
	}

	rows := make([]JobRow, len(jobs))
	for i, j := range jobs {
		store := byID[j.StoreID]
		row := JobRow{ImageJob: j, StoreName: j.StoreID, Cost: pricing.JobCost(j, store, rate)}
		if store != nil && store.Name != "" {
			row.StoreName = store.Name
		}
		rows[i] = row
	}
	return rows
}

func jobTotals(rows []JobRow) string {
	costs := make([]pricing.Cost, len(rows))
	for i, r := range rows {
		costs[i] = r.Cost
	}
	s := pricing.Totals(costs)

	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	return fmt.Sprintf("%s  %d jobs · credits %s · cost %s · profit %s",
		label.Render("Totals"), s.Jobs, money(s.Credits), egp(s.CostEGP), signed(s.ProfitEGP))
}

func jobColumns() []datatable.Column[JobRow] {
	return []datatable.Column[JobRow]{
		{Key: "display_job_id", Label: "Job", Sortable: true, Kind: compare.String, Width: 14},
		{Key: "store_name", Label: "Store", Sortable: true, Kind: compare.String, Width: 24},
		{Key: "timestamp", Label: "Time", Sortable: true, Kind: compare.Date, Render: func(r JobRow) string {
			return date(r.Timestamp)
		}},
		{Key: "package", Label: "Package", Sortable: true, Kind: compare.String, Render: func(r JobRow) string {
			return tier(r.Cost.Package)
		}},
		{Key: "status", Label: "Status", Sortable: true, Kind: compare.String, Render: func(r JobRow) string {
			if r.ErrorCode == "" {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Positive)).Render("OK")
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Negative)).Render(pricing.FormatErrorCode(r.ErrorCode))
		}},
		{Key: "processing_time_sec", Label: "Took", Sortable: true, Kind: compare.Number, Render: func(r JobRow) string {
			return seconds(r.ProcessingTimeSec)
		}},
		{Key: "tokens_used", Label: "Tokens", Sortable: true, Kind: compare.Number},
		{Key: "credits", Label: "Credits", Sortable: true, Kind: compare.Number, Render: func(r JobRow) string {
			return money(r.Cost.CreditsPerJob)
		}},
		{Key: "gemini_usd", Label: "Gemini $", Sortable: true, Kind: compare.Number, Render: func(r JobRow) string {
			return fmt.Sprintf("$%.2f", r.Cost.GeminiUSD)
		}},
		{Key: "fx", Label: "USD/EGP", Sortable: true, Kind: compare.Number, Render: func(r JobRow) string {
			return money(r.Cost.USDToEGP)
		}},
		{Key: "cost_egp", Label: "Cost", Sortable: true, Kind: compare.Number, Render: func(r JobRow) string {
			return egp(r.Cost.CostEGP)
		}},
		{Key: "profit_egp", Label: "Profit", Sortable: true, Kind: compare.Number, Render: func(r JobRow) string {
			return signed(r.Cost.ProfitEGP)
		}},
		{Key: "ready_for_publish", Label: "Publish", Sortable: true, Kind: compare.Bool, Render: func(r JobRow) string {
			return yesNo(r.ReadyForPublish)
		}},
		{Key: "phone_id", Label: "Phone", Sortable: true, Kind: compare.String},
	}
}

// NewVideoJobsPage lists video jobs
func NewVideoJobsPage(deps *Deps) *ListPage[models.VideoJob] {
	return NewListPage(Resource[models.VideoJob]{
		Name:  "video-jobs",
		Title: "Video Jobs",
		Columns: []datatable.Column[models.VideoJob]{
			{Key: "job_date", Label: "Date", Sortable: true, Kind: compare.Date, Render: func(v models.VideoJob) string {
				return date(v.JobDate)
			}},
			{Key: "store_name", Label: "Store", Sortable: true, Kind: compare.String, Width: 24},
			{Key: "uploaded_by", Label: "Uploaded By", Sortable: true, Kind: compare.String},
			{Key: "video_type", Label: "Type", Sortable: true, Kind: compare.String},
			{Key: "duration_sec", Label: "Duration", Sortable: true, Kind: compare.Number, Render: func(v models.VideoJob) string {
				return seconds(&v.DurationSec)
			}},
			{Key: "upload_provider", Label: "Provider", Sortable: true, Kind: compare.String},
			{Key: "credits_per_job", Label: "Credits", Sortable: true, Kind: compare.Number, Render: func(v models.VideoJob) string {
				return money(v.CreditsPerJob)
			}},
			{Key: "my_cost_egp", Label: "Cost", Sortable: true, Kind: compare.Number, Render: func(v models.VideoJob) string {
				return egp(v.MyCostEGP)
			}},
		},
		DefaultSort: &datatable.Sort{Key: "job_date", Direction: compare.Desc},
		Fetch: func(ctx context.Context) ([]models.VideoJob, error) {
			page, err := deps.Client.VideoJobs(ctx, api.ListParams{})
			return page.Items, err
		},
	}, deps)
}
