package app

import (
	"log/slog"
	"net/http"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	dbPath     string
	httpClient *http.Client
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithDatabasePath overrides the configured database location
func WithDatabasePath(path string) Option {
	return func(cfg *appConfig) {
		cfg.dbPath = path
	}
}

// WithHTTPClient replaces the API client's transport
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = hc
	}
}
