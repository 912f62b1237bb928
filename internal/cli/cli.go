package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/thenoetrevino/dressdash/internal/app"
	"github.com/thenoetrevino/dressdash/internal/auth"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container shared with the TUI
	ctx context.Context

	// owned is set when this CLI opened the app and must close it
	owned   bool
	logFile io.Closer
}

// NewCLI loads the configuration, opens the local database and restores
// the stored session
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := logging.Init(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	return &CLI{App: application, ctx: ctx, owned: true, logFile: logFile}, nil
}

// GetCLIFromContext reuses an App attached to ctx (tests do this) and
// otherwise builds a new CLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := app.FromContext(ctx); ok {
		return &CLI{App: a, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}

// RequireSession fails when nobody is signed in
func (c *CLI) RequireSession() error {
	if !c.App.Session.SignedIn() {
		return auth.ErrNotSignedIn
	}
	return nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logFile != nil {
		_ = c.logFile.Close()
	}
	return err
}
