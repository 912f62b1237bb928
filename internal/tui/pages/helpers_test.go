package pages

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/database"
	"github.com/thenoetrevino/dressdash/internal/models"
)

type memPrefs struct {
	mu    sync.Mutex
	prefs map[string]models.TablePrefs
	saves int
}

func newMemPrefs() *memPrefs {
	return &memPrefs{prefs: map[string]models.TablePrefs{}}
}

func (m *memPrefs) Get(_ context.Context, page string) (models.TablePrefs, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prefs[page]
	if !ok {
		return models.TablePrefs{}, database.ErrNotFound
	}
	return p, nil
}

func (m *memPrefs) Save(_ context.Context, p models.TablePrefs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.prefs[p.Page] = p
	return nil
}

type failingPrefs struct{}

func (failingPrefs) Get(context.Context, string) (models.TablePrefs, error) {
	return models.TablePrefs{}, errors.New("disk on fire")
}

func (failingPrefs) Save(context.Context, models.TablePrefs) error {
	return errors.New("disk on fire")
}

// fakeAPI serves canned bodies by path
func fakeAPI(t *testing.T, bodies map[string]string) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"not found"}`)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return api.New(srv.URL)
}

func testDeps(pageSize int) *Deps {
	cfg := config.Default()
	cfg.Table.PageSize = pageSize
	cfg.Table.SearchDebounce = 0
	return &Deps{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func press(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

// run executes cmd and every command batched inside it, returning the
// messages produced
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver runs cmd and feeds its messages back to page
func deliver(page Page, cmd tea.Cmd) (Page, []tea.Msg) {
	var rest []tea.Msg
	for _, msg := range run(cmd) {
		var next tea.Cmd
		page, next = page.Update(msg)
		rest = append(rest, run(next)...)
	}
	return page, rest
}
