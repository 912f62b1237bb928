package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/app"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/logging"
	"github.com/thenoetrevino/dressdash/internal/tui/core"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else
	logFile, err := logging.Init(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	slog.Info("starting dashboard", "api", application.Client.BaseURL(), "signed_in", application.Session.SignedIn())

	deps := &pages.Deps{
		Ctx:      ctx,
		Client:   application.Client,
		Exporter: application.Exporter,
		Prefs:    application.Repo.Prefs,
		Config:   cfg,
		Logger:   logging.Logger,
	}
	p := tea.NewProgram(core.New(deps, application.Session), tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// in-flight requests share ctx, give them a moment to unwind
		select {
		case <-errChan:
		case <-time.After(2 * time.Second):
		}
	}

	return nil
}
