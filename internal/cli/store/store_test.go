package store

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/testutil"
)

func TestPause(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Set("PATCH /stores/s1", `{"store_id":"s1","store_name":"Nile","is_paused":true}`)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	out, err := testutil.ExecuteCLICommand(t, a, PauseCmd(), []string{"--id", "s1", "--json"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_paused":true}`, b.Payload("PATCH /stores/s1"))

	var result struct {
		Data storeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, storeResult{ID: "s1", Name: "Nile", Paused: true}, result.Data)
}

func TestResume(t *testing.T) {
	b := testutil.NewBackend(t)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleStaff)

	out, err := testutil.ExecuteCLICommand(t, a, ResumeCmd(), []string{"--id", "s1", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "s1\n", out)
	assert.JSONEq(t, `{"is_paused":false}`, b.Payload("PATCH /stores/s1"))
}

func TestPause_MissingID(t *testing.T) {
	b := testutil.NewBackend(t)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	_, err := testutil.ExecuteCLICommand(t, a, PauseCmd(), []string{"--json"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.False(t, b.Called("PATCH /stores/"))
}

func TestPause_NotFound(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Fail("PATCH /stores/nope", http.StatusNotFound)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	_, err := testutil.ExecuteCLICommand(t, a, PauseCmd(), []string{"--id", "nope", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.True(t, api.IsKind(err, api.KindNotFound))
}

func TestDelete_Force(t *testing.T) {
	b := testutil.NewBackend(t)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	out, err := testutil.ExecuteCLICommand(t, a, DeleteCmd(), []string{"--id", "s1", "--force", "--json"})
	require.NoError(t, err)
	assert.True(t, b.Called("DELETE /stores/s1"))
	assert.Contains(t, out, `"deleted":true`)
}

func TestDelete_MachineModeNeedsForce(t *testing.T) {
	b := testutil.NewBackend(t)
	a := testutil.SetupTestApp(t, b)
	testutil.SignIn(t, a, models.RoleAdmin)

	_, err := testutil.ExecuteCLICommand(t, a, DeleteCmd(), []string{"--id", "s1", "--quiet"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.False(t, b.Called("DELETE /stores/s1"))
}

func TestDelete_RequiresSession(t *testing.T) {
	b := testutil.NewBackend(t)
	a := testutil.SetupTestApp(t, b)

	_, err := testutil.ExecuteCLICommand(t, a, DeleteCmd(), []string{"--id", "s1", "--force", "--json"})
	assert.Equal(t, cli.ExitAuth, cli.ExitCode(err))
	assert.False(t, b.Called("DELETE /stores/s1"))
}
