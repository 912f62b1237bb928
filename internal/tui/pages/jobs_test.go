package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/pricing"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
)

func ptr[T any](v T) *T { return &v }

func TestPriceJobs(t *testing.T) {
	stores := []models.Store{
		{ID: "s1", Name: "Nile Boutique", PerImageCredit: ptr(12.0)},
	}
	jobs := []models.ImageJob{
		{ID: "j1", StoreID: "s1", Package: "Basic"},
		{ID: "j2", StoreID: "gone", Package: "Basic", CreditsPerJob: ptr(9.0), USDToEGP: ptr(50.0)},
	}

	rows := priceJobs(jobs, stores, 40)
	require.Len(t, rows, 2)

	assert.Equal(t, "Nile Boutique", rows[0].StoreName)
	assert.Equal(t, 12.0, rows[0].Cost.CreditsPerJob)
	assert.Equal(t, 40.0, rows[0].Cost.USDToEGP)

	// unknown stores fall back to the job's own figures and id
	assert.Equal(t, "gone", rows[1].StoreName)
	assert.Equal(t, 9.0, rows[1].Cost.CreditsPerJob)
	assert.Equal(t, 50.0, rows[1].Cost.USDToEGP)
}

func TestJobRow_Field(t *testing.T) {
	row := JobRow{
		ImageJob:  models.ImageJob{ID: "j1", StoreID: "s1"},
		StoreName: "Nile Boutique",
		Cost:      pricing.Cost{Package: "Pro", CreditsPerJob: 10, CostEGP: 6.5, ProfitEGP: 3.5},
	}

	assert.Equal(t, "Nile Boutique", row.Field("store_name"))
	assert.Equal(t, "Pro", row.Field("package"))
	assert.Equal(t, 6.5, row.Field("cost_egp"))
	assert.Equal(t, 3.5, row.Field("profit_egp"))
	assert.Equal(t, "s1", row.Field("store_id"))
	assert.Equal(t, "j1", datatable.RowKey(row, 0))
}

func TestFetchJobs(t *testing.T) {
	deps := testDeps(20)
	deps.Client = fakeAPI(t, map[string]string{
		"/image-jobs":    `[{"job_id":"j1","store_id":"s1","package":"Basic"}]`,
		"/stores":        `[{"store_id":"s1","store_name":"Nile Boutique"}]`,
		"/common-things": `{"data":{"id":1,"exchange_usd_egp":50}}`,
	})

	rows, err := fetchJobs(context.Background(), deps)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Nile Boutique", rows[0].StoreName)
	assert.Equal(t, 50.0, rows[0].Cost.USDToEGP)
	assert.InDelta(t, 0.08*50, rows[0].Cost.CostEGP, 1e-9)
}

func TestFetchJobs_WithoutRate(t *testing.T) {
	deps := testDeps(20)
	deps.Client = fakeAPI(t, map[string]string{
		"/image-jobs": `[{"job_id":"j1","store_id":"s1","package":"Basic"}]`,
	})

	rows, err := fetchJobs(context.Background(), deps)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, pricing.DefaultUSDToEGP, rows[0].Cost.USDToEGP)
	assert.Equal(t, "s1", rows[0].StoreName)
}

func TestJobTotals(t *testing.T) {
	out := jobTotals([]JobRow{
		{Cost: pricing.Cost{CreditsPerJob: 10, CostEGP: 4, ProfitEGP: 6}},
		{Cost: pricing.Cost{CreditsPerJob: 10, CostEGP: 4, ProfitEGP: 6}},
	})
	assert.Contains(t, out, "2 jobs")
	assert.Contains(t, out, "credits 20.00")
	assert.Contains(t, out, "cost 8.00 EGP")
}
