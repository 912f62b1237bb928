package datatable

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/dressdash/internal/compare"
)

// EmptyMessage is the single body row of a table without rows.
const EmptyMessage = "No results found."

const (
	arrowAsc  = " ▲"
	arrowDesc = " ▼"
)

// Header is one rendered header cell.
type Header struct {
	Key      string
	Label    string
	Sortable bool
	// Arrow is the sort indicator, empty unless this column is sorted.
	Arrow    string
	Selected bool
}

// Pagination is the footer state. Current and Total are echoed from the
// caller; the component only disables controls at the boundaries.
type Pagination struct {
	Current      int
	Total        int
	PrevDisabled bool
	NextDisabled bool
}

// MenuItem is one entry of the columns menu.
type MenuItem struct {
	Key      string
	Label    string
	Visible  bool
	Selected bool
}

// Layout is everything View draws, computed without side effects.
type Layout struct {
	Headers []Header

	// Keys holds the rendering key of each body row.
	Keys  []string
	Cells [][]string

	// Empty is set when there are no rows; EmptySpan is then the number of
	// columns the "No results found." row spans.
	Empty     bool
	EmptySpan int

	// Pagination is nil when there is a single page.
	Pagination *Pagination

	Searchable bool
	Searching  bool
	Query      string
	Exportable bool

	MenuOpen bool
	Menu     []MenuItem

	Cursor int
}

// Layout computes the table for the current rows and UI state.
func (m Model[T]) Layout() Layout {
	active := m.ActiveColumns()

	l := Layout{
		Headers:    make([]Header, len(active)),
		Pagination: m.pagination(),
		Searchable: m.opts.Searchable,
		Searching:  m.focus == focusSearch,
		Query:      m.search.Value(),
		Exportable: m.callbacks.OnExport != nil,
		MenuOpen:   m.focus == focusColumns,
		Cursor:     m.rowCursor,
	}

	for i, c := range active {
		h := Header{Key: c.Key, Label: c.Label, Sortable: c.Sortable, Selected: i == m.headerCursor}
		if m.sort != nil && m.sort.Key == c.Key {
			h.Arrow = arrowAsc
			if m.sort.Direction == compare.Desc {
				h.Arrow = arrowDesc
			}
		}
		l.Headers[i] = h
	}

	if len(m.rows) == 0 {
		l.Empty = true
		l.EmptySpan = len(active)
	} else {
		l.Keys = make([]string, len(m.rows))
		l.Cells = make([][]string, len(m.rows))
		for r, row := range m.rows {
			l.Keys[r] = RowKey(row, r)
			cells := make([]string, len(active))
			for i, c := range active {
				cells[i] = Cell(row, c)
			}
			l.Cells[r] = cells
		}
	}

	l.Menu = make([]MenuItem, len(m.columns))
	for i, c := range m.columns {
		l.Menu[i] = MenuItem{Key: c.Key, Label: c.Label, Visible: m.visible[c.Key], Selected: i == m.menuCursor}
	}
	return l
}

// Snapshot returns the visible headers and the plain text of every cell on
// display, in display order.
func (m Model[T]) Snapshot() (headers []string, rows [][]string) {
	return Plain(m.rows, m.ActiveColumns())
}

// Plain renders rows over columns as plain text, without styling, so files
// written from a table match what the screen shows.
func Plain[T any](rows []T, columns []Column[T]) (headers []string, cells [][]string) {
	headers = make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Label
	}
	cells = make([][]string, len(rows))
	for r, row := range rows {
		line := make([]string, len(columns))
		for i, c := range columns {
			line[i] = ansi.Strip(Cell(row, c))
		}
		cells[r] = line
	}
	return headers, cells
}

func (m Model[T]) pagination() *Pagination {
	if m.opts.TotalPages <= 1 {
		return nil
	}
	return &Pagination{
		Current:      m.opts.CurrentPage,
		Total:        m.opts.TotalPages,
		PrevDisabled: m.opts.CurrentPage == 1,
		NextDisabled: m.opts.CurrentPage == m.opts.TotalPages,
	}
}
