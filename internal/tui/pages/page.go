// Package pages holds the dashboard tabs. Each list page owns the rows of
// one API resource and drives a datatable with them.
package pages

import (
	"context"
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/export"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/notifications"
)

// Page is one tab of the dashboard
type Page interface {
	Name() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	SetSize(width, height int)

	// Focused reports whether the page is capturing typed text, in which
	// case the application must not treat keys as shortcuts.
	Focused() bool

	Refresh() tea.Cmd
}

// PrefsStore persists table preferences per page
type PrefsStore interface {
	Get(ctx context.Context, page string) (models.TablePrefs, error)
	Save(ctx context.Context, prefs models.TablePrefs) error
}

// Deps are the collaborators every page shares
type Deps struct {
	Ctx      context.Context
	Client   *api.Client
	Exporter *export.Exporter
	Prefs    PrefsStore // optional
	Config   *config.Config
	Logger   *slog.Logger
}

func (d *Deps) ctx() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

func (d *Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

func (d *Deps) pageSize() int {
	if d.Config == nil || d.Config.Table.PageSize <= 0 {
		return config.DefaultPageSize
	}
	return d.Config.Table.PageSize
}

func (d *Deps) keys() config.KeyMappings {
	if d.Config == nil {
		return config.DefaultKeyMappings()
	}
	return d.Config.KeyMappings
}

func (d *Deps) exportFormat() export.Format {
	if d.Config == nil {
		return export.CSV
	}
	f, err := export.ParseFormat(d.Config.Export.Format)
	if err != nil {
		return export.CSV
	}
	return f
}

// SessionExpiredMsg tells the application the API rejected the token
type SessionExpiredMsg struct {
	Err error
}

// failed turns a fetch or mutation error into the message the
// application reacts to
func failed(what string, err error) tea.Cmd {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if api.IsKind(err, api.KindUnauthorized) {
		return func() tea.Msg { return SessionExpiredMsg{Err: err} }
	}
	return notifications.Send(notifications.Error, what+": "+api.Message(err))
}
