package modelops

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/tui"
)

// RefreshPages refetches the named pages. Pages that are not loaded for
// this session are skipped.
func RefreshPages(m *tui.Model, names ...string) tea.Cmd {
	if !m.Started() {
		return nil
	}
	var cmds []tea.Cmd
	for _, name := range names {
		if p := m.Page(name); p != nil {
			cmds = append(cmds, p.Refresh())
		}
	}
	return tea.Batch(cmds...)
}

// RefreshActive refetches the page shown
func RefreshActive(m *tui.Model) tea.Cmd {
	p := m.ActivePage()
	if p == nil {
		return nil
	}
	return p.Refresh()
}
