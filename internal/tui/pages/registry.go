package pages

import (
	"context"
	"sort"

	"github.com/thenoetrevino/dressdash/internal/export"
)

// Exportable is a list page that can be loaded and exported without the TUI
type Exportable interface {
	Page
	Load(ctx context.Context, query string) error
	ExportTable() export.Table
}

// ListPages builds every list page, in tab order
func ListPages(deps *Deps) []Exportable {
	return []Exportable{
		NewStoresPage(deps),
		NewImageJobsPage(deps),
		NewVideoJobsPage(deps),
		NewTransactionsPage(deps),
		NewRefundsPage(deps),
		NewDownloadsPage(deps),
		NewErrorLogsPage(deps),
		NewCreditCatalogPage(deps),
		NewPromptsPage(deps),
		NewPackagesPage(deps),
		NewPhonesPage(deps),
		NewUsersPage(deps),
		NewBotMessagesPage(deps),
		NewPaymentForPage(deps),
		NewPaymentMethodsPage(deps),
	}
}

// LookupListPage finds a list page by name
func LookupListPage(deps *Deps, name string) (Exportable, bool) {
	for _, p := range ListPages(deps) {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// ListPageNames returns the sorted names ListPages knows
func ListPageNames() []string {
	var names []string
	for _, p := range ListPages(&Deps{}) {
		names = append(names, p.Name())
	}
	sort.Strings(names)
	return names
}
