package datatable

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/muesli/reflow/truncate"
)

// View renders the toolbar, the grid, the optional columns menu and the
// pagination footer.
func (m Model[T]) View() string {
	l := m.Layout()

	sections := []string{m.renderToolbar(l)}

	grid := m.renderGrid(l)
	if l.MenuOpen {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", m.renderMenu(l))
	}
	sections = append(sections, grid)

	if l.Pagination != nil {
		sections = append(sections, m.renderFooter(*l.Pagination))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model[T]) renderToolbar(l Layout) string {
	var parts []string
	if l.Searchable {
		if l.Searching || l.Query != "" {
			parts = append(parts, m.styles.Search.Render(m.search.View()))
		} else {
			parts = append(parts, m.styles.Action.Render(fmt.Sprintf("[%s] search", m.keys.Search.Help().Key)))
		}
	}
	parts = append(parts, m.styles.Action.Render(fmt.Sprintf("[%s] columns", m.keys.Columns.Help().Key)))
	if l.Exportable {
		parts = append(parts, m.styles.Action.Render(fmt.Sprintf("[%s] export", m.keys.Export.Help().Key)))
	}
	return strings.Join(parts, "   ")
}

func (m Model[T]) renderGrid(l Layout) string {
	active := m.ActiveColumns()

	headers := make([]string, len(l.Headers))
	for i, h := range l.Headers {
		headers[i] = h.Label + h.Arrow
	}

	rows := make([][]string, len(l.Cells))
	for r, cells := range l.Cells {
		out := make([]string, len(cells))
		for i, c := range cells {
			if w := active[i].Width; w > 0 {
				c = truncate.StringWithTail(c, uint(w), "…")
			}
			out[i] = c
		}
		rows[r] = out
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col < len(l.Headers) && l.Headers[col].Selected && !l.Empty {
					return m.styles.SelectedHeader
				}
				return m.styles.Header
			}
			if row == l.Cursor {
				return m.styles.SelectedRow
			}
			return m.opts.RowStyle.Inherit(m.styles.Cell).Padding(0, 1)
		})
	if m.width > 0 {
		t = t.Width(m.width)
	}

	if !l.Empty {
		return t.Render()
	}

	grid := ""
	if len(headers) > 0 {
		grid = t.Render()
	}
	width := max(lipgloss.Width(grid)-2, lipgloss.Width(EmptyMessage)+2)
	empty := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Border.GetForeground()).
		Render(m.styles.Empty.Width(width).Render(EmptyMessage))
	if grid == "" {
		return empty
	}
	return lipgloss.JoinVertical(lipgloss.Left, grid, empty)
}

func (m Model[T]) renderMenu(l Layout) string {
	var b strings.Builder
	b.WriteString("Columns\n")
	for i, item := range l.Menu {
		box := "[ ]"
		if item.Visible {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, item.Label)
		if item.Selected {
			line = m.styles.MenuSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < len(l.Menu)-1 {
			b.WriteString("\n")
		}
	}
	return m.styles.Menu.Render(b.String())
}

func (m Model[T]) renderFooter(p Pagination) string {
	control := func(label string, disabled bool) string {
		if disabled {
			return m.styles.Disabled.Render(label)
		}
		return m.styles.Enabled.Render(label)
	}
	prev := control(fmt.Sprintf("%s Previous", m.keys.PrevPage.Help().Key), p.PrevDisabled)
	next := control(fmt.Sprintf("Next %s", m.keys.NextPage.Help().Key), p.NextDisabled)
	status := m.styles.Footer.Render(fmt.Sprintf("Page %d of %d", p.Current, p.Total))
	return lipgloss.JoinHorizontal(lipgloss.Top, status, "   ", prev, "  ", next)
}
