package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/auth"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/database"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/testutil"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/notifications"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
)

// newTestModel builds the application against a fake backend. A non-empty
// role signs in with that role before anything runs.
func newTestModel(t *testing.T, role string) (*tui.Model, *testutil.Backend) {
	t.Helper()
	ctx := context.Background()
	logger := testutil.DiscardLogger()

	db, err := database.Open(ctx, database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := database.NewRepository(db)

	b := testutil.NewBackend(t)
	if role != "" {
		b.Set("/auth/me", `{"user_id":"u1","role":"`+role+`","full_name":"Mona"}`)
	}

	session := auth.NewSession(repo.Sessions, logger)
	client := api.New(b.URL, api.WithTokenSource(session), api.WithLogger(logger))

	cfg := config.Default()
	cfg.Table.SearchDebounce = 0
	deps := &pages.Deps{Ctx: ctx, Client: client, Prefs: repo.Prefs, Config: cfg, Logger: logger}

	m := tui.InitialModel(deps, session)
	m.Notifications = notifications.NewStack(time.Hour)
	HandleWindowResize(&m, tea.WindowSizeMsg{Width: 140, Height: 40})

	if role != "" {
		require.NoError(t, session.Set(ctx, models.Identity{Token: "tok", UserID: "u1", FullName: "Mona", Role: role}))
	}
	return &m, b
}

// exec runs cmd and every command batched inside it. Commands that do not
// return quickly are timers (toast expiry, cursor blink) and are dropped.
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, exec(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(300 * time.Millisecond):
		return nil
	}
}

// drive feeds the results of cmd back through Update until things settle
func drive(m *tui.Model, cmd tea.Cmd) {
	queue := exec(cmd)
	for i := 0; len(queue) > 0 && i < 500; i++ {
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		queue = append(queue, exec(Update(m, msg))...)
	}
}

// send presses keys one by one, driving each to completion
func send(m *tui.Model, keys ...string) {
	for _, k := range keys {
		drive(m, Update(m, key(k)))
	}
}

func key(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "shift+tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
	}
	if rest, ok := strings.CutPrefix(k, "ctrl+"); ok {
		return tea.KeyPressMsg(tea.Key{Code: []rune(rest)[0], Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

// start runs Init and lets every page load
func start(m *tui.Model) {
	drive(m, Init(m))
}

func toasts(m *tui.Model) []string {
	var out []string
	for _, t := range m.Notifications.All() {
		out = append(out, t.Message)
	}
	return out
}

// openTab moves to the tab with name
func openTab(t *testing.T, m *tui.Model, name string) {
	t.Helper()
	for range m.VisiblePages() {
		if p := m.ActivePage(); p != nil && p.Name() == name {
			return
		}
		send(m, "tab")
	}
	t.Fatalf("no tab named %q", name)
}
