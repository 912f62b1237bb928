package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/dressdash/internal/app"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/database"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// DiscardLogger drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestApp builds an App on an in-memory database that talks to b and
// exports into a temporary directory
func SetupTestApp(t *testing.T, b *Backend) *app.App {
	t.Helper()
	cfg := config.Default()
	cfg.API.BaseURL = b.URL
	cfg.Export.Dir = t.TempDir()
	cfg.Table.SearchDebounce = 0

	a, err := app.New(context.Background(), cfg,
		app.WithDatabasePath(database.MemoryPath),
		app.WithLogger(DiscardLogger()))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// SignIn stores a session for role as if the operator had logged in
func SignIn(t *testing.T, a *app.App, role string) {
	t.Helper()
	id := models.Identity{Token: "tok", UserID: "u1", FullName: "Mona", Email: "mona@example.com", Role: role}
	if err := a.Session.Set(context.Background(), id); err != nil {
		t.Fatalf("Failed to sign in: %v", err)
	}
}
