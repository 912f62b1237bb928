package datatable

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dressdash/internal/compare"
)

type row = map[string]any

type sortCall struct {
	key string
	dir compare.Direction
}

type recorder struct {
	sorts    []sortCall
	pages    []int
	exports  int
	searches []string
}

func (r *recorder) callbacks(withExport bool) Callbacks {
	cb := Callbacks{
		OnSort: func(key string, dir compare.Direction) tea.Cmd {
			r.sorts = append(r.sorts, sortCall{key, dir})
			return nil
		},
		OnPageChange: func(page int) tea.Cmd {
			r.pages = append(r.pages, page)
			return nil
		},
		OnSearch: func(q string) tea.Cmd {
			r.searches = append(r.searches, q)
			return nil
		},
	}
	if withExport {
		cb.OnExport = func() tea.Cmd {
			r.exports++
			return nil
		}
	}
	return cb
}

func press(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

func send[T any](m Model[T], keys ...string) Model[T] {
	for _, k := range keys {
		m, _ = m.Update(press(k))
	}
	return m
}

func headerKeys(l Layout) []string {
	keys := make([]string, len(l.Headers))
	for i, h := range l.Headers {
		keys[i] = h.Key
	}
	return keys
}

func scenarioColumns() []Column[row] {
	return []Column[row]{
		{Key: "name", Label: "Name", Sortable: true},
		{Key: "age", Label: "Age"},
	}
}

func scenarioRows() []row {
	return []row{
		{"id": 1, "name": "Ann", "age": 30},
		{"id": 2, "name": "Bo"},
		{"id": 3, "name": "Cy", "age": 25},
	}
}

func TestThreeRowsTwoColumns(t *testing.T) {
	rec := &recorder{}
	m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))
	m.SetRows(scenarioRows())

	l := m.Layout()
	require.Len(t, l.Cells, 3)
	assert.Equal(t, []string{"1", "2", "3"}, l.Keys)
	assert.Equal(t, []string{"Ann", "30"}, l.Cells[0])
	assert.Equal(t, "-", l.Cells[1][1])
	assert.Equal(t, []string{"Cy", "25"}, l.Cells[2])
	assert.False(t, l.Empty)

	m = send(m, "s")
	assert.Equal(t, []sortCall{{"name", compare.Asc}}, rec.sorts)
}

func TestColumnVisibilityFollowsColumnOrder(t *testing.T) {
	columns := []Column[row]{
		{Key: "a", Label: "A"},
		{Key: "b", Label: "B"},
		{Key: "c", Label: "C"},
		{Key: "d", Label: "D"},
	}
	m := New(columns, DefaultOptions(), Callbacks{})

	visible := map[string]bool{"a": true, "b": true, "c": true, "d": true}
	sequence := []string{"c", "a", "d", "c", "b", "a", "d", "b", "b", "c", "a"}
	for i, k := range sequence {
		m.ToggleColumn(k)
		visible[k] = !visible[k]

		var want []string
		for _, c := range columns {
			if visible[c.Key] {
				want = append(want, c.Key)
			}
		}
		got := headerKeys(m.Layout())
		if len(want) == 0 {
			assert.Empty(t, got, "step %d", i)
			continue
		}
		assert.Equal(t, want, got, "step %d", i)
	}
}

func TestDefaultVisibleColumns(t *testing.T) {
	columns := []Column[row]{
		{Key: "a", Label: "A"},
		{Key: "b", Label: "B"},
		{Key: "c", Label: "C"},
	}
	opts := DefaultOptions()
	opts.DefaultVisibleColumns = []string{"c", "a", "missing"}
	m := New(columns, opts, Callbacks{})

	assert.Equal(t, []string{"a", "c"}, m.VisibleColumns())
	assert.False(t, m.IsVisible("b"))
}

func TestEmptyStateSpansActiveColumns(t *testing.T) {
	all := []Column[row]{
		{Key: "a", Label: "A"},
		{Key: "b", Label: "B"},
		{Key: "c", Label: "C"},
		{Key: "d", Label: "D"},
	}
	for n := 0; n <= len(all); n++ {
		t.Run(fmt.Sprintf("%d columns", n), func(t *testing.T) {
			m := New(all[:n], DefaultOptions(), Callbacks{})
			m.SetRows(nil)

			l := m.Layout()
			assert.True(t, l.Empty)
			assert.Equal(t, n, l.EmptySpan)
			assert.Empty(t, l.Cells)

			view := ansi.Strip(m.View())
			assert.Equal(t, 1, strings.Count(view, EmptyMessage))
		})
	}
}

func TestEmptyStateAfterHidingColumns(t *testing.T) {
	m := New(scenarioColumns(), DefaultOptions(), Callbacks{})
	m.ToggleColumn("age")

	l := m.Layout()
	assert.True(t, l.Empty)
	assert.Equal(t, 1, l.EmptySpan)
}

type person struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Age   *int   `json:"age,omitempty"`
	Email string
}

type fielder struct{ values map[string]any }

func (f fielder) Field(key string) any { return f.values[key] }
func (f fielder) RowID() string       { return fmt.Sprint(f.values["key"]) }

func TestFormatFallback(t *testing.T) {
	zero := 0
	var nilInt *int
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "-"},
		{"nil pointer", nilInt, "-"},
		{"empty string", "", "-"},
		{"zero", 0, "0"},
		{"pointer to zero", &zero, "0"},
		{"zero string", "0", "0"},
		{"false", false, "false"},
		{"true", true, "true"},
		{"float", 2.5, "2.5"},
		{"zero float", 0.0, "0"},
		{"zero time", time.Time{}, "-"},
		{"time", time.Date(2025, 3, 1, 14, 5, 0, 0, time.UTC), "2025-03-01 14:05"},
		{"strings", []string{"a", "b"}, "a, b"},
		{"no strings", []string{}, "-"},
		{"text", "Ann", "Ann"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestValueLookup(t *testing.T) {
	age := 41
	p := person{ID: 7, Name: "Dee", Age: &age, Email: "dee@example.com"}

	assert.Equal(t, "Dee", Value(p, "name"))
	assert.Equal(t, "41", Format(Value(p, "age")))
	assert.Equal(t, "dee@example.com", Value(&p, "email"))
	assert.Nil(t, Value(p, "missing"))
	assert.Nil(t, Value((*person)(nil), "name"))

	f := fielder{values: map[string]any{"key": "k1", "total": 0}}
	assert.Equal(t, 0, Value(f, "total"))
	assert.Equal(t, "-", Cell(f, Column[fielder]{Key: "nope"}))
}

func TestCustomRenderIsShownAsIs(t *testing.T) {
	columns := []Column[row]{
		{Key: "actions", Label: "", Render: func(row) string { return "" }},
		{Key: "name", Label: "Name", Render: func(r row) string { return strings.ToUpper(r["name"].(string)) }},
	}
	m := New(columns, DefaultOptions(), Callbacks{})
	m.SetRows([]row{{"name": "ann"}})

	assert.Equal(t, []string{"", "ANN"}, m.Layout().Cells[0])
}

func TestRowKeys(t *testing.T) {
	assert.Equal(t, "0", RowKey(row{"name": "x"}, 0))
	assert.Equal(t, "5", RowKey(row{"id": 5}, 2))
	assert.Equal(t, "7", RowKey(person{ID: 7}, 1))
	assert.Equal(t, "k9", RowKey(fielder{values: map[string]any{"key": "k9"}}, 3))
}

func TestSortToggle(t *testing.T) {
	rec := &recorder{}
	m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))
	m.SetRows(scenarioRows())

	m = send(m, "s", "s", "s")
	assert.Equal(t, []sortCall{
		{"name", compare.Asc},
		{"name", compare.Desc},
		{"name", compare.Asc},
	}, rec.sorts)

	s, ok := m.Sort()
	require.True(t, ok)
	assert.Equal(t, Sort{Key: "name", Direction: compare.Asc}, s)
	assert.Equal(t, " ▲", m.Layout().Headers[0].Arrow)
}

func TestSortEnterTogglesToo(t *testing.T) {
	rec := &recorder{}
	m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))

	m = send(m, "enter", "enter")
	assert.Equal(t, []sortCall{{"name", compare.Asc}, {"name", compare.Desc}}, rec.sorts)
}

func TestSortIgnoresUnsortableColumns(t *testing.T) {
	rec := &recorder{}
	m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))

	m = send(m, "l", "s", "<", ">")
	assert.Empty(t, rec.sorts)
	_, ok := m.Sort()
	assert.False(t, ok)
}

func TestSortNewKeyResetsToAscending(t *testing.T) {
	rec := &recorder{}
	columns := []Column[row]{
		{Key: "name", Label: "Name", Sortable: true},
		{Key: "age", Label: "Age", Sortable: true, Kind: compare.Number},
	}
	m := New(columns, DefaultOptions(), rec.callbacks(false))

	m = send(m, "s", "s", "l", "s")
	assert.Equal(t, []sortCall{
		{"name", compare.Asc},
		{"name", compare.Desc},
		{"age", compare.Asc},
	}, rec.sorts)

	l := m.Layout()
	assert.Empty(t, l.Headers[0].Arrow)
	assert.Equal(t, " ▲", l.Headers[1].Arrow)
}

func TestSortForcedDirection(t *testing.T) {
	rec := &recorder{}
	m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))

	m = send(m, ">", ">", "s", "<")
	assert.Equal(t, []sortCall{
		{"name", compare.Desc},
		{"name", compare.Desc},
		{"name", compare.Asc},
		{"name", compare.Asc},
	}, rec.sorts)
	assert.Equal(t, " ▲", m.Layout().Headers[0].Arrow)
}

func TestPaginationBoundaries(t *testing.T) {
	t.Run("single page hides footer", func(t *testing.T) {
		rec := &recorder{}
		m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))
		m.SetRows(scenarioRows())

		assert.Nil(t, m.Layout().Pagination)
		m = send(m, "[", "]")
		assert.Empty(t, rec.pages)
		assert.NotContains(t, ansi.Strip(m.View()), "Page 1 of 1")
	})

	t.Run("first page disables previous", func(t *testing.T) {
		rec := &recorder{}
		opts := DefaultOptions()
		opts.TotalPages = 3
		m := New(scenarioColumns(), opts, rec.callbacks(false))

		p := m.Layout().Pagination
		require.NotNil(t, p)
		assert.True(t, p.PrevDisabled)
		assert.False(t, p.NextDisabled)

		m = send(m, "[", "]")
		assert.Equal(t, []int{2}, rec.pages)
		assert.Contains(t, ansi.Strip(m.View()), "Page 1 of 3")
	})

	t.Run("last page disables next", func(t *testing.T) {
		rec := &recorder{}
		m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))
		m.SetPagination(3, 3)

		p := m.Layout().Pagination
		require.NotNil(t, p)
		assert.False(t, p.PrevDisabled)
		assert.True(t, p.NextDisabled)

		m = send(m, "]", "[")
		assert.Equal(t, []int{2}, rec.pages)
	})

	t.Run("component does not move the page itself", func(t *testing.T) {
		rec := &recorder{}
		m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))
		m.SetPagination(2, 5)

		m = send(m, "]", "]")
		assert.Equal(t, []int{3, 3}, rec.pages)
		current, total := m.Page()
		assert.Equal(t, 2, current)
		assert.Equal(t, 5, total)
	})
}

func TestSearchPassthrough(t *testing.T) {
	rec := &recorder{}
	m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))

	m = send(m, "/")
	require.True(t, m.Focused())

	typed := "AnN-3x/"
	var want []string
	for i, r := range typed {
		m = send(m, string(r))
		want = append(want, typed[:i+1])
	}
	assert.Equal(t, want, rec.searches)
	assert.Equal(t, typed, m.Query())

	m = send(m, "esc")
	assert.False(t, m.Focused())
	assert.Len(t, rec.searches, len(typed))
}

func TestSearchDisabled(t *testing.T) {
	rec := &recorder{}
	opts := DefaultOptions()
	opts.Searchable = false
	m := New(scenarioColumns(), opts, rec.callbacks(false))

	m = send(m, "/", "a")
	assert.False(t, m.Focused())
	assert.Empty(t, rec.searches)
	assert.False(t, m.Layout().Searchable)
	assert.NotContains(t, ansi.Strip(m.View()), "search")
}

func TestSearchDebounce(t *testing.T) {
	rec := &recorder{}
	opts := DefaultOptions()
	opts.SearchDebounce = 50 * time.Millisecond
	m := New(scenarioColumns(), opts, rec.callbacks(false))

	m = send(m, "/")
	var cmd tea.Cmd
	m, cmd = m.Update(press("a"))
	assert.NotNil(t, cmd)
	m, _ = m.Update(press("b"))
	assert.Empty(t, rec.searches)

	// the tick scheduled for "a" is stale
	m, _ = m.Update(searchTickMsg{id: m.id, seq: 1})
	assert.Empty(t, rec.searches)

	// ticks from other tables are ignored
	m, _ = m.Update(searchTickMsg{id: m.id + 1000, seq: 2})
	assert.Empty(t, rec.searches)

	m, _ = m.Update(searchTickMsg{id: m.id, seq: 2})
	assert.Equal(t, []string{"ab"}, rec.searches)

	m, _ = m.Update(press("c"))
	m, _ = m.Update(press("enter"))
	assert.Equal(t, []string{"ab", "abc"}, rec.searches)
	assert.False(t, m.Focused())

	// flushed on enter, so the pending tick no longer fires
	m, _ = m.Update(searchTickMsg{id: m.id, seq: 3})
	assert.Equal(t, []string{"ab", "abc"}, rec.searches)
}

func TestExportControl(t *testing.T) {
	t.Run("absent without callback", func(t *testing.T) {
		rec := &recorder{}
		m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(false))

		assert.False(t, m.Layout().Exportable)
		assert.NotContains(t, ansi.Strip(m.View()), "export")
		m = send(m, "x")
		assert.Zero(t, rec.exports)
	})

	t.Run("once per press with callback", func(t *testing.T) {
		rec := &recorder{}
		m := New(scenarioColumns(), DefaultOptions(), rec.callbacks(true))

		assert.True(t, m.Layout().Exportable)
		assert.Contains(t, ansi.Strip(m.View()), "export")
		m = send(m, "x")
		assert.Equal(t, 1, rec.exports)
		m = send(m, "x", "x")
		assert.Equal(t, 3, rec.exports)
	})
}

func TestColumnsMenu(t *testing.T) {
	rec := &recorder{}
	opts := DefaultOptions()
	opts.TotalPages = 4
	opts.CurrentPage = 2
	m := New(scenarioColumns(), opts, rec.callbacks(false))
	m.SetRows(scenarioRows())
	m.SetSort("name", compare.Desc)

	m = send(m, "c")
	require.True(t, m.MenuOpen())
	l := m.Layout()
	require.Len(t, l.Menu, 2)
	assert.True(t, l.Menu[0].Selected)
	assert.True(t, l.Menu[1].Visible)
	assert.Contains(t, ansi.Strip(m.View()), "[x] Age")

	m = send(m, "j", "space")
	assert.Contains(t, ansi.Strip(m.View()), "[ ] Age")
	assert.Equal(t, []string{"name"}, headerKeys(m.Layout()))

	// keys go to the menu while it is open
	m = send(m, "]", "s")
	assert.Empty(t, rec.pages)
	assert.Empty(t, rec.sorts)

	m = send(m, "esc")
	assert.False(t, m.MenuOpen())

	s, ok := m.Sort()
	require.True(t, ok)
	assert.Equal(t, compare.Desc, s.Direction)
	current, total := m.Page()
	assert.Equal(t, 2, current)
	assert.Equal(t, 4, total)

	m = send(m, "c", "j", "space", "enter")
	assert.Equal(t, []string{"name", "age"}, m.VisibleColumns())
}

func TestRowCursor(t *testing.T) {
	m := New(scenarioColumns(), DefaultOptions(), Callbacks{})
	m.SetRows(scenarioRows())

	m = send(m, "j", "j", "j", "j")
	assert.Equal(t, 2, m.Cursor())
	r, ok := m.SelectedRow()
	require.True(t, ok)
	assert.Equal(t, "Cy", r["name"])

	m = send(m, "k")
	assert.Equal(t, 1, m.Cursor())

	m.SetRows(scenarioRows()[:1])
	assert.Equal(t, 0, m.Cursor())

	m.SetRows(nil)
	_, ok = m.SelectedRow()
	assert.False(t, ok)
}

func TestViewRendersHeadersAndCells(t *testing.T) {
	m := New(scenarioColumns(), DefaultOptions(), Callbacks{})
	m.SetRows(scenarioRows())
	m.SetSort("name", compare.Desc)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Name ▼")
	assert.Contains(t, view, "Age")
	assert.Contains(t, view, "Ann")
	assert.Contains(t, view, "Cy")
	assert.NotContains(t, view, EmptyMessage)
}

func TestViewTruncatesWideCells(t *testing.T) {
	columns := []Column[row]{{Key: "note", Label: "Note", Width: 6}}
	m := New(columns, DefaultOptions(), Callbacks{})
	m.SetRows([]row{{"note": "a very long note"}})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "a ver…")
	assert.NotContains(t, view, "long note")
}

func TestSnapshotIsPlainText(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)
	columns := []Column[row]{
		{Key: "name", Label: "Name"},
		{Key: "age", Label: "Age", Render: func(r row) string { return bold.Render(Format(r["age"])) }},
	}
	m := New(columns, DefaultOptions(), Callbacks{})
	m.SetRows(scenarioRows())
	m.ToggleColumn("name")

	headers, rows := m.Snapshot()
	assert.Equal(t, []string{"Age"}, headers)
	assert.Equal(t, [][]string{{"30"}, {"-"}, {"25"}}, rows)
}

func TestSortRows(t *testing.T) {
	columns := []Column[row]{
		{Key: "name", Label: "Name", Sortable: true, Kind: compare.String},
		{Key: "age", Label: "Age", Sortable: true, Kind: compare.Number},
	}
	rows := scenarioRows()

	byAge := SortRows(rows, columns, "age", compare.Asc)
	assert.Equal(t, []any{"Bo", "Cy", "Ann"}, names(byAge))

	byAgeDesc := SortRows(rows, columns, "age", compare.Desc)
	assert.Equal(t, []any{"Ann", "Cy", "Bo"}, names(byAgeDesc))

	byName := SortRows(rows, columns, "name", compare.Desc)
	assert.Equal(t, []any{"Cy", "Bo", "Ann"}, names(byName))

	assert.Equal(t, names(rows), names(SortRows(rows, columns, "missing", compare.Asc)))
	// input is left alone
	assert.Equal(t, []any{"Ann", "Bo", "Cy"}, names(rows))
}

func names(rows []row) []any {
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r["name"]
	}
	return out
}
