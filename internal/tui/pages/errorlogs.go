package pages

import (
	"context"
	"strconv"
	"time"
	_ "time/tzdata" // Cairo time on hosts without a zoneinfo database

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
	"github.com/thenoetrevino/dressdash/internal/tui/theme"
)

// errorKinds are the filter choices, in cycling order. Empty shows both.
var errorKinds = []string{"", models.ErrorKindError, models.ErrorKindStoreDeletion}

// cairo is where the pipeline runs; error timestamps read in its time
var cairo = loadZone("Africa/Cairo")

func loadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

func cairoTime(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return datatable.Format(s)
	}
	return t.In(cairo).Format("2006-01-02 15:04:05")
}

// ErrorKindLabel names an error log kind
func ErrorKindLabel(kind string) string {
	switch kind {
	case "":
		return "All"
	case models.ErrorKindError:
		return "Errors"
	case models.ErrorKindStoreDeletion:
		return "Store deletions"
	}
	return kind
}

// ErrorLogsPage lists pipeline errors, narrowed server side by kind
type ErrorLogsPage struct {
	*ListPage[models.ErrorLog]
	kind   int
	filter key.Binding
}

// NewErrorLogsPage starts on every kind
func NewErrorLogsPage(deps *Deps) *ErrorLogsPage {
	km := deps.keys()
	p := &ErrorLogsPage{
		filter: key.NewBinding(key.WithKeys(km.Filter), key.WithHelp(km.Filter, "filter kind")),
	}
	p.ListPage = NewListPage(Resource[models.ErrorLog]{
		Name:          "errors",
		Title:         "Error Logs",
		Columns:       errorLogColumns(),
		DefaultSort:   &datatable.Sort{Key: "timestamp", Direction: compare.Desc},
		Fetch:         errorLogFetch(deps, ""),
		DisableSearch: true,
		DefaultVisibleColumns: []string{
			"kind", "store_name", "job_id", "media_type", "stage", "provider",
			"timestamp", "error_message", "http_status", "retryable",
		},
	}, deps)
	return p
}

// errorLogFetch binds kind so a fetch in flight never sees a later choice
func errorLogFetch(deps *Deps, kind string) func(context.Context) ([]models.ErrorLog, error) {
	return func(ctx context.Context) ([]models.ErrorLog, error) {
		page, err := deps.Client.Errors(ctx, kind, api.ListParams{})
		return page.Items, err
	}
}

// Kind returns the kind shown, empty for all
func (p *ErrorLogsPage) Kind() string {
	return errorKinds[p.kind]
}

// CycleKind moves to the next kind and refetches
func (p *ErrorLogsPage) CycleKind() tea.Cmd {
	p.kind = (p.kind + 1) % len(errorKinds)
	p.res.Fetch = errorLogFetch(p.deps, p.Kind())
	return p.Refresh()
}

func (p *ErrorLogsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && !p.Focused() && key.Matches(k, p.filter) {
		return p, p.CycleKind()
	}
	_, cmd := p.ListPage.Update(msg)
	return p, cmd
}

func (p *ErrorLogsPage) View() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	chips := []string{subtle.Render("Type (" + p.filter.Help().Key + "):")}
	for i, k := range errorKinds {
		if i == p.kind {
			chips = append(chips, active.Render("["+ErrorKindLabel(k)+"]"))
			continue
		}
		chips = append(chips, subtle.Render(ErrorKindLabel(k)))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(chips)...)
	return lipgloss.JoinVertical(lipgloss.Left, bar, p.ListPage.View())
}

func errorLogColumns() []datatable.Column[models.ErrorLog] {
	return []datatable.Column[models.ErrorLog]{
		{Key: "error_id", Label: "ID", Sortable: true, Kind: compare.String},
		{Key: "kind", Label: "Type", Sortable: true, Kind: compare.String, Render: func(e models.ErrorLog) string {
			if e.Kind == models.ErrorKindStoreDeletion {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.WarningFg)).Render("Store deletion")
			}
			return "Error"
		}},
		{Key: "store_name", Label: "Store", Sortable: true, Kind: compare.String, Width: 24},
		{Key: "job_id", Label: "Job", Sortable: true, Kind: compare.String},
		{Key: "media_type", Label: "Media", Sortable: true, Kind: compare.String},
		{Key: "stage", Label: "Stage", Sortable: true, Kind: compare.String},
		{Key: "provider", Label: "Provider", Sortable: true, Kind: compare.String},
		{Key: "timestamp", Label: "Time (Cairo)", Sortable: true, Kind: compare.Date, Render: func(e models.ErrorLog) string {
			return cairoTime(e.Timestamp)
		}},
		{Key: "error_message", Label: "Message", Width: 48},
		{Key: "shopify_endpoint", Label: "Shopify Endpoint", Width: 32},
		{Key: "http_status", Label: "HTTP", Sortable: true, Kind: compare.Number, Render: func(e models.ErrorLog) string {
			if e.HTTPStatus == nil {
				return datatable.Placeholder
			}
			status := strconv.Itoa(*e.HTTPStatus)
			if *e.HTTPStatus >= 500 {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Negative)).Render(status)
			}
			return status
		}},
		{Key: "error_code", Label: "Code", Sortable: true, Kind: compare.String},
		{Key: "retryable", Label: "Retryable", Sortable: true, Kind: compare.Bool, Render: func(e models.ErrorLog) string {
			return yesNo(e.IsRetryable())
		}},
	}
}
