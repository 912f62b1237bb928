package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/auth"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/database"
	"github.com/thenoetrevino/dressdash/internal/export"
)

// App holds everything the TUI and the CLI share.
// This is the main application container that manages resource lifecycles.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Repository layer (local session, table prefs and export log)
	Repo *database.Repository

	// Session is the signed in operator; the client reads its token
	Session *auth.Session
	Client  *api.Client

	Exporter *export.Exporter

	db *sql.DB
}

// New opens the local database, restores the stored session and builds
// the API client around it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	dbPath := cfg.Database.Path
	if options.dbPath != "" {
		dbPath = options.dbPath
	}

	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	repo := database.NewRepository(db)

	session := auth.NewSession(repo.Sessions, options.logger)
	session.Boot(ctx)

	clientOpts := []api.Option{
		api.WithTokenSource(session),
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(options.logger),
	}
	if options.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(options.httpClient))
	}

	return &App{
		Config:  cfg,
		Logger:  options.logger,
		Repo:    repo,
		Session: session,
		Client:  api.New(cfg.API.BaseURL, clientOpts...),
		Exporter: &export.Exporter{
			Dir:      cfg.Export.Dir,
			Recorder: repo.Exports,
			Logger:   options.logger,
		},
		db: db,
	}, nil
}

// ExportFormat is the configured default export format
func (a *App) ExportFormat() export.Format {
	f, err := export.ParseFormat(a.Config.Export.Format)
	if err != nil {
		a.Logger.Warn("invalid export format in config", "format", a.Config.Export.Format, "error", err)
		return export.CSV
	}
	return f
}

// Close releases the database
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
