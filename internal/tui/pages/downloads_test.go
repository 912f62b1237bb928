package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dressdash/internal/models"
)

func TestDownloadsPage_ResolvesNames(t *testing.T) {
	deps := testDeps(10)
	deps.Client = fakeAPI(t, map[string]string{
		"/downloads": `{"data":[
			{"download_id":"d1","store_id":"s1","method":"download_all","triggered_by":"u1","created_at":"2026-10-01T10:00:00Z"},
			{"download_id":"d2","store_id":"gone","store_name_cache":"Old Shop","method":"since_last_download_onward","triggered_by":"u9","created_at":"2026-10-02T10:00:00Z"}
		]}`,
		"/stores": `{"data":[{"store_id":"s1","store_name":"Nile"}]}`,
		"/users":  `{"data":[{"user_id":"u1","full_name":"Mona"}]}`,
	})

	p := NewDownloadsPage(deps)
	require.NoError(t, p.Load(context.Background(), ""))

	rows := p.Filtered()
	require.Len(t, rows, 2)
	// newest first
	assert.Equal(t, "d2", rows[0].ID)
	assert.Equal(t, "Old Shop", rows[0].Field("store"))
	assert.Equal(t, "u9", rows[0].Field("triggered_by"))
	assert.Equal(t, "Nile", rows[1].Field("store"))
	assert.Equal(t, "Mona", rows[1].Field("triggered_by"))
}

func TestDownloadsPage_StaffWithoutUsers(t *testing.T) {
	deps := testDeps(10)
	// no /users route: the fake answers 404 as the backend does for staff
	deps.Client = fakeAPI(t, map[string]string{
		"/downloads": `{"data":[{"download_id":"d1","store_id":"s1","method":"download_all","triggered_by":"u1"}]}`,
		"/stores":    `{"data":[{"store_id":"s1","store_name":"Nile"}]}`,
	})

	p := NewDownloadsPage(deps)
	require.NoError(t, p.Load(context.Background(), ""))
	require.Len(t, p.Filtered(), 1)
	assert.Equal(t, "Nile", p.Filtered()[0].Field("store"))
}

func TestDownloadsPage_FetchError(t *testing.T) {
	deps := testDeps(10)
	deps.Client = fakeAPI(t, map[string]string{"/stores": `{"data":[]}`})

	assert.Error(t, NewDownloadsPage(deps).Load(context.Background(), ""))
}

func TestDownloadMethodLabel(t *testing.T) {
	assert.Equal(t, "Since last download", DownloadMethodLabel(models.DownloadSinceLast))
	assert.Equal(t, "Everything", DownloadMethodLabel(models.DownloadAll))
	assert.Equal(t, "Custom range", DownloadMethodLabel(models.DownloadRange))

	d := models.Download{Method: models.DownloadRange, FromTS: "2026-10-01T00:00:00Z", ToTS: "2026-10-05T00:00:00Z"}
	assert.Contains(t, downloadMethod(d), "Custom range 2026-10-01")
}

func TestLookupPages(t *testing.T) {
	deps := testDeps(10)
	deps.Client = fakeAPI(t, map[string]string{
		"/payment-for":    `{"data":[{"payment_for_id":"f1","payment_for_name":"Top up"},{"payment_for_id":"f2","payment_for_name":"Package"}]}`,
		"/payment-method": `{"data":[{"payment_method_id":"m1","payment_method_name":"Cash"}]}`,
	})

	purposes := NewPaymentForPage(deps)
	require.NoError(t, purposes.Load(context.Background(), "top"))
	require.Len(t, purposes.Filtered(), 1)
	assert.Equal(t, "f1", purposes.Filtered()[0].ID)

	methods := NewPaymentMethodsPage(deps)
	require.NoError(t, methods.Load(context.Background(), ""))
	assert.Equal(t, "Payment Methods", methods.ExportTable().Title)
	require.Len(t, methods.All(), 1)
	assert.Equal(t, "Cash", methods.All()[0].Name)
}
