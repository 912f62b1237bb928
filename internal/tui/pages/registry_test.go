package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPageNames(t *testing.T) {
	names := ListPageNames()
	assert.Contains(t, names, "stores")
	assert.Contains(t, names, "image-jobs")
	assert.Contains(t, names, "bot-messages")
	for _, name := range []string{"downloads", "errors", "payment-for", "payment-methods"} {
		assert.Contains(t, names, name)
	}
	assert.NotContains(t, names, "dashboard")
	assert.IsIncreasing(t, names)
}

func TestLookupListPage_Unknown(t *testing.T) {
	_, ok := LookupListPage(testDeps(10), "nope")
	assert.False(t, ok)
}

func TestLoad_ExportsFilteredRows(t *testing.T) {
	deps := testDeps(1)
	deps.Client = fakeAPI(t, map[string]string{
		"/prompts": `{"data":[
			{"prompt_id":"a","name":"Studio","scope":"global","prompt_text":"white  backdrop"},
			{"prompt_id":"b","name":"Garden","scope":"store","prompt_text":"flowers"}
		]}`,
	})

	page, ok := LookupListPage(deps, "prompts")
	require.True(t, ok)
	require.NoError(t, page.Load(context.Background(), "garden"))

	table := page.ExportTable()
	assert.Equal(t, "Prompts", table.Title)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Garden", table.Rows[0][0])

	require.NoError(t, page.Load(context.Background(), ""))
	// every filtered row is exported, not just the visible page
	assert.Len(t, page.ExportTable().Rows, 2)
}

func TestLoad_FetchError(t *testing.T) {
	deps := testDeps(10)
	deps.Client = fakeAPI(t, map[string]string{})

	page, ok := LookupListPage(deps, "prompts")
	require.True(t, ok)
	assert.Error(t, page.Load(context.Background(), ""))
}
