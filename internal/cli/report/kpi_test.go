package report

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/testutil"
)

func TestKPI_Preset(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Set("/kpi", `{"stores_total":12,"stores_new":2,"transactions_egp":15000,"refunds_egp":500,"image_jobs_cost_egp":1200.5}`)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	out, err := testutil.ExecuteCLICommand(t, a, KPICmd(), []string{"--range", "this-month"})
	require.NoError(t, err)
	assert.Contains(t, out, "This Month")
	assert.Contains(t, out, "12 (+2 new)")
	assert.Contains(t, out, "15,000.00 EGP")
	// 15000 - 500 - 1200.5
	assert.Contains(t, out, "13,299.50 EGP")
	assert.Contains(t, out, "USD to EGP")
}

func TestKPI_CustomRangeJSON(t *testing.T) {
	b := testutil.NewBackend(t)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	out, err := testutil.ExecuteCLICommand(t, a, KPICmd(), []string{"--from", "2025-01-01", "--to", "2025-01-31", "--json"})
	require.NoError(t, err)

	var result struct {
		Success bool      `json:"success"`
		Data    kpiResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "Custom", result.Data.Range)
	assert.Equal(t, "2025-01-01", result.Data.From)
	assert.Equal(t, 1, result.Data.KPI.StoresTotal)
	assert.Equal(t, 50.0, result.Data.ExchangeRate)
}

func TestKPI_BadRangeIsUsage(t *testing.T) {
	b := testutil.NewBackend(t)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	_, err := testutil.ExecuteCLICommand(t, a, KPICmd(), []string{"--range", "custom", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.False(t, b.Called("GET /kpi"))
}

func TestKPI_RequiresSession(t *testing.T) {
	a := testutil.SetupTestApp(t, testutil.NewBackend(t))

	_, err := testutil.ExecuteCLICommand(t, a, KPICmd(), []string{"--json"})
	assert.Equal(t, cli.ExitAuth, cli.ExitCode(err))
}

func TestKPI_RateFailureIsNotFatal(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Fail("/common-things", http.StatusInternalServerError)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	out, err := testutil.ExecuteCLICommand(t, a, KPICmd(), nil)
	require.NoError(t, err)
	assert.NotContains(t, out, "USD to EGP")
}
