// Package datatable is a controlled table view shared by every list page.
//
// The caller owns the rows: it fetches, filters, sorts and paginates them and
// hands the result to SetRows. The table keeps only UI-local state (visible
// columns, the sort indicator, the search text, cursors) and reports user
// intents through Callbacks.
package datatable

import (
	"slices"
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/compare"
)

// Sort is the active sort indicator.
type Sort struct {
	Key       string
	Direction compare.Direction
}

// Options are the display props of a table.
type Options struct {
	Searchable  bool
	CurrentPage int
	TotalPages  int

	// RowStyle is applied to every body row on top of the base row style.
	RowStyle lipgloss.Style

	// DefaultVisibleColumns lists the keys shown initially. Empty means all.
	DefaultVisibleColumns []string

	// SearchDebounce delays OnSearch until typing pauses. Zero reports
	// every keystroke.
	SearchDebounce time.Duration

	SearchPlaceholder string
	KeyMap            KeyMap
}

// DefaultOptions returns searchable single-page options with default keys.
func DefaultOptions() Options {
	return Options{
		Searchable:        true,
		CurrentPage:       1,
		TotalPages:        1,
		SearchPlaceholder: "Search...",
		KeyMap:            DefaultKeyMap(),
	}
}

// Callbacks receive the intents of the table. Each one is optional and may
// return a command for work the caller wants done asynchronously.
type Callbacks struct {
	OnSort       func(key string, dir compare.Direction) tea.Cmd
	OnPageChange func(page int) tea.Cmd
	OnExport     func() tea.Cmd
	OnSearch     func(query string) tea.Cmd
}

type focus int

const (
	focusTable focus = iota
	focusSearch
	focusColumns
)

// searchTickMsg fires when a debounced search settles.
type searchTickMsg struct {
	id  int64
	seq int
}

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}

// Model is the table component.
type Model[T any] struct {
	id        int64
	columns   []Column[T]
	rows      []T
	opts      Options
	callbacks Callbacks
	keys      KeyMap
	styles    Styles

	visible map[string]bool
	sort    *Sort
	search  textinput.Model
	seq     int

	focus        focus
	headerCursor int
	rowCursor    int
	menuCursor   int
	width        int
}

// New creates a table over columns. The column list is fixed for the life
// of the model.
func New[T any](columns []Column[T], opts Options, callbacks Callbacks) Model[T] {
	if opts.CurrentPage < 1 {
		opts.CurrentPage = 1
	}
	if opts.TotalPages < 1 {
		opts.TotalPages = 1
	}
	if opts.KeyMap.Search.Keys() == nil {
		opts.KeyMap = DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Placeholder = opts.SearchPlaceholder
	ti.Prompt = "/ "

	m := Model[T]{
		id:        nextID(),
		columns:   columns,
		opts:      opts,
		callbacks: callbacks,
		keys:      opts.KeyMap,
		styles:    DefaultStyles(),
		search:    ti,
	}
	m.SetVisibleColumns(opts.DefaultVisibleColumns)
	return m
}

// Init implements the Bubble Tea component contract.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// SetRows replaces the rows on display.
func (m *Model[T]) SetRows(rows []T) {
	m.rows = rows
	m.rowCursor = clamp(m.rowCursor, 0, len(rows)-1)
}

// Rows returns the rows on display.
func (m Model[T]) Rows() []T {
	return m.rows
}

// Columns returns every column, visible or not.
func (m Model[T]) Columns() []Column[T] {
	return m.columns
}

// SetPagination updates the caller-owned page props.
func (m *Model[T]) SetPagination(current, total int) {
	m.opts.CurrentPage = current
	m.opts.TotalPages = max(total, 1)
}

// Page returns the current and total page as last set by the caller.
func (m Model[T]) Page() (current, total int) {
	return m.opts.CurrentPage, m.opts.TotalPages
}

// SetCallbacks replaces the intent callbacks.
func (m *Model[T]) SetCallbacks(callbacks Callbacks) {
	m.callbacks = callbacks
}

// SetStyles replaces the styles used by View.
func (m *Model[T]) SetStyles(s Styles) {
	m.styles = s
}

// SetWidth sets the width View renders into. Zero lets the table size
// itself to its content.
func (m *Model[T]) SetWidth(w int) {
	m.width = w
	m.search.SetWidth(max(w/3, 20))
}

// SetVisibleColumns shows exactly the given keys. An empty list shows all
// columns. Unknown keys are ignored.
func (m *Model[T]) SetVisibleColumns(keys []string) {
	m.visible = make(map[string]bool, len(m.columns))
	for _, c := range m.columns {
		m.visible[c.Key] = len(keys) == 0 || slices.Contains(keys, c.Key)
	}
	m.headerCursor = clamp(m.headerCursor, 0, len(m.ActiveColumns())-1)
}

// VisibleColumns returns the keys of the visible columns in column order.
func (m Model[T]) VisibleColumns() []string {
	keys := make([]string, 0, len(m.columns))
	for _, c := range m.ActiveColumns() {
		keys = append(keys, c.Key)
	}
	return keys
}

// IsVisible reports whether the column with key is shown.
func (m Model[T]) IsVisible(key string) bool {
	return m.visible[key]
}

// ToggleColumn flips the visibility of the column with key.
func (m *Model[T]) ToggleColumn(key string) {
	if _, ok := m.visible[key]; !ok {
		return
	}
	m.visible[key] = !m.visible[key]
	m.headerCursor = clamp(m.headerCursor, 0, len(m.ActiveColumns())-1)
}

// ActiveColumns returns the visible columns in their original order.
func (m Model[T]) ActiveColumns() []Column[T] {
	active := make([]Column[T], 0, len(m.columns))
	for _, c := range m.columns {
		if m.visible[c.Key] {
			active = append(active, c)
		}
	}
	return active
}

// Sort returns the active sort indicator, if any.
func (m Model[T]) Sort() (Sort, bool) {
	if m.sort == nil {
		return Sort{}, false
	}
	return *m.sort, true
}

// SetSort sets the sort indicator without emitting OnSort. Used to restore
// saved preferences.
func (m *Model[T]) SetSort(key string, dir compare.Direction) {
	if key == "" {
		m.sort = nil
		return
	}
	m.sort = &Sort{Key: key, Direction: dir}
}

// Query returns the current search text.
func (m Model[T]) Query() string {
	return m.search.Value()
}

// SetQuery sets the search text without emitting OnSearch.
func (m *Model[T]) SetQuery(q string) {
	m.search.SetValue(q)
}

// Focused reports whether the search input or the columns menu holds the
// keyboard, in which case the host should not interpret keys itself.
func (m Model[T]) Focused() bool {
	return m.focus != focusTable
}

// MenuOpen reports whether the columns menu is showing.
func (m Model[T]) MenuOpen() bool {
	return m.focus == focusColumns
}

// Cursor returns the index of the selected row.
func (m Model[T]) Cursor() int {
	return m.rowCursor
}

// SelectedRow returns the row under the cursor.
func (m Model[T]) SelectedRow() (T, bool) {
	var zero T
	if m.rowCursor < 0 || m.rowCursor >= len(m.rows) {
		return zero, false
	}
	return m.rows[m.rowCursor], true
}

// KeyMap returns the bindings in use, for help rendering.
func (m Model[T]) KeyMap() KeyMap {
	return m.keys
}

// Update handles key presses and debounced search ticks.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case searchTickMsg:
		if msg.id != m.id || msg.seq != m.seq {
			return m, nil
		}
		return m, m.emitSearch()

	case tea.KeyPressMsg:
		switch m.focus {
		case focusSearch:
			return m.updateSearch(msg)
		case focusColumns:
			return m.updateColumnsMenu(msg), nil
		default:
			return m.updateTable(msg)
		}
	}
	return m, nil
}

func (m Model[T]) updateTable(msg tea.KeyPressMsg) (Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		if !m.opts.Searchable {
			return m, nil
		}
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Columns):
		m.focus = focusColumns
		m.menuCursor = 0

	case key.Matches(msg, m.keys.PrevColumn):
		m.headerCursor = clamp(m.headerCursor-1, 0, len(m.ActiveColumns())-1)

	case key.Matches(msg, m.keys.NextColumn):
		m.headerCursor = clamp(m.headerCursor+1, 0, len(m.ActiveColumns())-1)

	case key.Matches(msg, m.keys.ToggleSort):
		if c, ok := m.headerColumn(); ok {
			cmd := m.ClickHeader(c.Key)
			return m, cmd
		}

	case key.Matches(msg, m.keys.SortAsc):
		if c, ok := m.headerColumn(); ok {
			cmd := m.SortBy(c.Key, compare.Asc)
			return m, cmd
		}

	case key.Matches(msg, m.keys.SortDesc):
		if c, ok := m.headerColumn(); ok {
			cmd := m.SortBy(c.Key, compare.Desc)
			return m, cmd
		}

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.PrevPage()

	case key.Matches(msg, m.keys.NextPage):
		return m, m.NextPage()

	case key.Matches(msg, m.keys.Export):
		return m, m.Export()

	case key.Matches(msg, m.keys.PrevRow):
		m.rowCursor = clamp(m.rowCursor-1, 0, len(m.rows)-1)

	case key.Matches(msg, m.keys.NextRow):
		m.rowCursor = clamp(m.rowCursor+1, 0, len(m.rows)-1)
	}
	return m, nil
}

func (m Model[T]) updateSearch(msg tea.KeyPressMsg) (Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = focusTable
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		m.focus = focusTable
		m.search.Blur()
		if m.opts.SearchDebounce > 0 {
			// flush the pending tick
			m.seq++
			return m, m.emitSearch()
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}

	if m.opts.SearchDebounce <= 0 {
		return m, tea.Batch(cmd, m.emitSearch())
	}

	m.seq++
	id, seq := m.id, m.seq
	tick := tea.Tick(m.opts.SearchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{id: id, seq: seq}
	})
	return m, tea.Batch(cmd, tick)
}

func (m Model[T]) updateColumnsMenu(msg tea.KeyPressMsg) Model[T] {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Accept), key.Matches(msg, m.keys.Columns):
		m.focus = focusTable
	case key.Matches(msg, m.keys.PrevRow):
		m.menuCursor = clamp(m.menuCursor-1, 0, len(m.columns)-1)
	case key.Matches(msg, m.keys.NextRow):
		m.menuCursor = clamp(m.menuCursor+1, 0, len(m.columns)-1)
	case key.Matches(msg, m.keys.Toggle):
		if m.menuCursor < len(m.columns) {
			m.ToggleColumn(m.columns[m.menuCursor].Key)
		}
	}
	return m
}

// ClickHeader is the header action for the column with key: ascending on
// first use, then flipping direction while the column stays active.
// Non-sortable columns are ignored.
func (m *Model[T]) ClickHeader(key string) tea.Cmd {
	c, ok := m.column(key)
	if !ok || !c.Sortable {
		return nil
	}
	dir := compare.Asc
	if m.sort != nil && m.sort.Key == key && m.sort.Direction == compare.Asc {
		dir = compare.Desc
	}
	return m.SortBy(key, dir)
}

// SortBy forces the sort indicator to key and dir and emits OnSort.
func (m *Model[T]) SortBy(key string, dir compare.Direction) tea.Cmd {
	c, ok := m.column(key)
	if !ok || !c.Sortable {
		return nil
	}
	m.sort = &Sort{Key: key, Direction: dir}
	if m.callbacks.OnSort == nil {
		return nil
	}
	return m.callbacks.OnSort(key, dir)
}

// PrevPage asks for the previous page unless the control is disabled.
func (m *Model[T]) PrevPage() tea.Cmd {
	p := m.pagination()
	if p == nil || p.PrevDisabled || m.callbacks.OnPageChange == nil {
		return nil
	}
	return m.callbacks.OnPageChange(p.Current - 1)
}

// NextPage asks for the next page unless the control is disabled.
func (m *Model[T]) NextPage() tea.Cmd {
	p := m.pagination()
	if p == nil || p.NextDisabled || m.callbacks.OnPageChange == nil {
		return nil
	}
	return m.callbacks.OnPageChange(p.Current + 1)
}

// Export invokes OnExport when the caller supplied one.
func (m *Model[T]) Export() tea.Cmd {
	if m.callbacks.OnExport == nil {
		return nil
	}
	return m.callbacks.OnExport()
}

func (m Model[T]) emitSearch() tea.Cmd {
	if m.callbacks.OnSearch == nil {
		return nil
	}
	return m.callbacks.OnSearch(m.search.Value())
}

func (m Model[T]) column(key string) (Column[T], bool) {
	for _, c := range m.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

func (m Model[T]) headerColumn() (Column[T], bool) {
	active := m.ActiveColumns()
	if m.headerCursor < 0 || m.headerCursor >= len(active) {
		return Column[T]{}, false
	}
	return active[m.headerCursor], true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
