package pages

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/database"
	"github.com/thenoetrevino/dressdash/internal/export"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
	"github.com/thenoetrevino/dressdash/internal/tui/notifications"
	"github.com/thenoetrevino/dressdash/internal/tui/theme"
)

// Resource describes one list page
type Resource[T any] struct {
	Name    string // slug used for prefs and export file names
	Title   string
	Columns []datatable.Column[T]

	// DefaultVisibleColumns applies until the operator changes the columns
	DefaultVisibleColumns []string
	DefaultSort           *datatable.Sort

	Fetch func(ctx context.Context) ([]T, error)

	// Match filters rows for the search box. Nil matches on the text of
	// every column.
	Match func(row T, query string) bool

	// Summary renders a line under the table for the filtered rows
	Summary func(rows []T) string

	// DisableSearch hides the search box for resources that are only
	// browsed by sorting
	DisableSearch bool
}

type loadedMsg[T any] struct {
	page string
	seq  int
	rows []T
	err  error
}

// ListPage fetches a resource and shows it in a datatable. Searching,
// sorting and paging all happen client side on the fetched rows.
type ListPage[T any] struct {
	res   Resource[T]
	deps  *Deps
	table datatable.Model[T]

	all      []T
	filtered []T
	query    string
	sort     *datatable.Sort
	page     int

	savedColumns []string
	refresh      key.Binding
	spinner      spinner.Model
	loading      bool
	seq          int
	loadedAt     time.Time
	err          error
	width        int
}

// NewListPage builds the page and restores its saved table preferences
func NewListPage[T any](res Resource[T], deps *Deps) *ListPage[T] {
	cfg := deps.keys()

	opts := datatable.DefaultOptions()
	opts.KeyMap = datatable.NewKeyMap(cfg)
	opts.DefaultVisibleColumns = res.DefaultVisibleColumns
	opts.Searchable = !res.DisableSearch
	if deps.Config != nil {
		opts.SearchDebounce = deps.Config.Table.SearchDebounce
	}

	p := &ListPage[T]{
		res:     res,
		deps:    deps,
		page:    1,
		sort:    res.DefaultSort,
		refresh: key.NewBinding(key.WithKeys(cfg.Refresh), key.WithHelp(cfg.Refresh, "refresh")),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	p.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	p.table = datatable.New(res.Columns, opts, datatable.Callbacks{
		OnSort: func(key string, dir compare.Direction) tea.Cmd {
			p.sort = &datatable.Sort{Key: key, Direction: dir}
			p.page = 1
			return p.savePrefs()
		},
		OnSearch: func(query string) tea.Cmd {
			p.query = query
			p.page = 1
			return nil
		},
		OnPageChange: func(page int) tea.Cmd {
			p.page = page
			return nil
		},
		OnExport: func() tea.Cmd {
			return p.exportCmd()
		},
	})
	if p.sort != nil {
		p.table.SetSort(p.sort.Key, p.sort.Direction)
	}
	p.restorePrefs()
	p.savedColumns = p.table.VisibleColumns()
	return p
}

func (p *ListPage[T]) Name() string  { return p.res.Name }
func (p *ListPage[T]) Title() string { return p.res.Title }

// Focused reports whether the table's search box or columns menu is open
func (p *ListPage[T]) Focused() bool {
	return p.table.Focused()
}

func (p *ListPage[T]) Init() tea.Cmd {
	return p.Refresh()
}

// Refresh refetches the resource. Responses of earlier fetches are dropped.
func (p *ListPage[T]) Refresh() tea.Cmd {
	if p.res.Fetch == nil {
		return nil
	}
	p.seq++
	p.loading = true
	seq, name, fetch, ctx := p.seq, p.res.Name, p.res.Fetch, p.deps.ctx()

	load := func() tea.Msg {
		rows, err := fetch(ctx)
		return loadedMsg[T]{page: name, seq: seq, rows: rows, err: err}
	}
	return tea.Batch(load, p.spinner.Tick)
}

func (p *ListPage[T]) SetSize(width, _ int) {
	p.width = width
	p.table.SetWidth(width)
}

func (p *ListPage[T]) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[T]:
		if msg.page != p.res.Name || msg.seq != p.seq {
			return p, nil
		}
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			p.deps.logger().Error("failed to load page", "page", p.res.Name, "error", msg.err)
			return p, failed("Failed to load "+strings.ToLower(p.res.Title), msg.err)
		}
		p.err = nil
		p.all = msg.rows
		p.loadedAt = time.Now()
		p.apply()
		return p, nil

	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyPressMsg:
		if !p.table.Focused() && key.Matches(msg, p.refresh) {
			return p, p.Refresh()
		}
	}

	// most messages reaching the table change nothing it shows, so rows
	// are only refiltered when a callback moved the query, sort or page
	before := p.state()
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	if p.state() != before {
		p.apply()
	}

	if cols := p.table.VisibleColumns(); !slices.Equal(cols, p.savedColumns) {
		p.savedColumns = cols
		cmd = tea.Batch(cmd, p.savePrefs())
	}
	return p, cmd
}

// viewState is what apply derives the shown rows from, besides the rows
type viewState struct {
	query string
	sort  datatable.Sort
	page  int
}

func (p *ListPage[T]) state() viewState {
	s := viewState{query: p.query, page: p.page}
	if p.sort != nil {
		s.sort = *p.sort
	}
	return s
}

// apply filters, sorts and pages the fetched rows into the table
func (p *ListPage[T]) apply() {
	rows := p.all
	if strings.TrimSpace(p.query) != "" {
		rows = slices.DeleteFunc(slices.Clone(rows), func(row T) bool {
			return !p.match(row, p.query)
		})
	}
	if p.sort != nil {
		rows = datatable.SortRows(rows, p.res.Columns, p.sort.Key, p.sort.Direction)
	}
	p.filtered = rows

	size := p.deps.pageSize()
	total := max(1, (len(rows)+size-1)/size)
	p.page = min(max(p.page, 1), total)

	start := (p.page - 1) * size
	end := min(start+size, len(rows))
	p.table.SetRows(rows[start:end])
	p.table.SetPagination(p.page, total)
}

func (p *ListPage[T]) match(row T, query string) bool {
	if p.res.Match != nil {
		return p.res.Match(row, query)
	}
	fields := make([]string, len(p.res.Columns))
	for i, c := range p.res.Columns {
		fields[i] = ansi.Strip(datatable.Cell(row, c))
	}
	return contains(query, fields...)
}

// Load fetches outside the update loop and applies query as the search.
// The CLI export uses it without a running program.
func (p *ListPage[T]) Load(ctx context.Context, query string) error {
	if p.res.Fetch == nil {
		return nil
	}
	rows, err := p.res.Fetch(ctx)
	if err != nil {
		return err
	}
	p.all = rows
	p.query = query
	p.table.SetQuery(query)
	p.loadedAt = time.Now()
	p.apply()
	return nil
}

// Selected returns the row under the cursor
func (p *ListPage[T]) Selected() (T, bool) {
	return p.table.SelectedRow()
}

// All returns every fetched row, ignoring the search
func (p *ListPage[T]) All() []T {
	return p.all
}

// Filtered returns every row matching the search, in display order
func (p *ListPage[T]) Filtered() []T {
	return p.filtered
}

// Table exposes the datatable for help rendering and tests
func (p *ListPage[T]) Table() datatable.Model[T] {
	return p.table
}

// Loading reports whether a fetch is in flight
func (p *ListPage[T]) Loading() bool {
	return p.loading
}

// ExportTable is the plain text of the filtered rows over the visible
// columns, across all pages
func (p *ListPage[T]) ExportTable() export.Table {
	headers, rows := datatable.Plain(p.filtered, p.table.ActiveColumns())
	return export.Table{Title: p.res.Title, Columns: headers, Rows: rows}
}

func (p *ListPage[T]) exportCmd() tea.Cmd {
	if p.deps.Exporter == nil {
		return notifications.Send(notifications.Warning, "Exports are not configured")
	}
	t := p.ExportTable()
	exp, ctx, name, format := p.deps.Exporter, p.deps.ctx(), p.res.Name, p.deps.exportFormat()

	return func() tea.Msg {
		path, err := exp.Export(ctx, name, format, t)
		switch {
		case errors.Is(err, export.ErrNothingToExport):
			return notifications.Msg{Severity: notifications.Warning, Message: "Nothing to export"}
		case err != nil:
			return notifications.Msg{Severity: notifications.Error, Message: "Export failed: " + err.Error()}
		}
		return notifications.Msg{
			Severity: notifications.Info,
			Message:  fmt.Sprintf("Exported %d rows to %s", len(t.Rows), path),
		}
	}
}

func (p *ListPage[T]) restorePrefs() {
	if p.deps.Prefs == nil {
		return
	}
	prefs, err := p.deps.Prefs.Get(p.deps.ctx(), p.res.Name)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			p.deps.logger().Warn("failed to load table prefs", "page", p.res.Name, "error", err)
		}
		return
	}
	if len(prefs.VisibleColumns) > 0 {
		p.table.SetVisibleColumns(prefs.VisibleColumns)
	}
	if prefs.SortKey != "" {
		dir, err := compare.ParseDirection(prefs.SortDirection)
		if err != nil {
			dir = compare.Asc
		}
		p.sort = &datatable.Sort{Key: prefs.SortKey, Direction: dir}
		p.table.SetSort(prefs.SortKey, dir)
	}
}

func (p *ListPage[T]) savePrefs() tea.Cmd {
	if p.deps.Prefs == nil {
		return nil
	}
	prefs := models.TablePrefs{Page: p.res.Name, VisibleColumns: p.table.VisibleColumns()}
	if p.sort != nil {
		prefs.SortKey = p.sort.Key
		prefs.SortDirection = string(p.sort.Direction)
	}
	store, ctx, logger := p.deps.Prefs, p.deps.ctx(), p.deps.logger()

	return func() tea.Msg {
		if err := store.Save(ctx, prefs); err != nil {
			logger.Warn("failed to save table prefs", "page", prefs.Page, "error", err)
		}
		return nil
	}
}

func (p *ListPage[T]) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title)).Render(p.res.Title)
	info := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	header := title
	switch {
	case p.loading:
		header += "  " + p.spinner.View() + info.Render(" loading")
	case !p.loadedAt.IsZero():
		header += info.Render(fmt.Sprintf("  %d of %d records · updated %s",
			len(p.filtered), len(p.all), p.loadedAt.Format("15:04:05")))
	}

	sections := []string{header, p.table.View()}
	if p.res.Summary != nil && len(p.filtered) > 0 {
		sections = append(sections, p.res.Summary(p.filtered))
	}
	if p.err != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Negative)).
			Render("Last refresh failed: "+p.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
