package modelops

import (
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
)

// selected returns the row under the cursor of page when it is the active
// tab, nil otherwise
func selected[T any](m *tui.Model, page *pages.ListPage[T]) *T {
	if page == nil {
		return nil
	}
	var active pages.Page = page
	if m.ActivePage() != active {
		return nil
	}
	row, ok := page.Selected()
	if !ok {
		return nil
	}
	return &row
}

// SelectedStore returns the store under the cursor when the stores tab is
// active, nil otherwise
func SelectedStore(m *tui.Model) *models.Store {
	return selected(m, m.Stores)
}

// SelectedPackage returns the package under the cursor when the packages
// tab is active, nil otherwise
func SelectedPackage(m *tui.Model) *models.Package {
	return selected(m, m.Packages)
}

// SelectedCreditItem returns the catalog entry under the cursor
func SelectedCreditItem(m *tui.Model) *models.CreditItem {
	return selected(m, m.CreditCatalog)
}

// SelectedPrompt returns the prompt under the cursor
func SelectedPrompt(m *tui.Model) *models.Prompt {
	return selected(m, m.Prompts)
}

// SelectedUser returns the operator under the cursor
func SelectedUser(m *tui.Model) *models.User {
	return selected(m, m.Users)
}

// SelectedPaymentFor returns the payment purpose under the cursor
func SelectedPaymentFor(m *tui.Model) *models.PaymentFor {
	return selected(m, m.PaymentFor)
}

// SelectedPaymentMethod returns the payment method under the cursor
func SelectedPaymentMethod(m *tui.Model) *models.PaymentMethod {
	return selected(m, m.PaymentMethods)
}

// KnownPackages returns the packages already loaded by the packages tab,
// sorted the way that tab shows them. The store form offers these.
func KnownPackages(m *tui.Model) []models.Package {
	return m.Packages.Filtered()
}

// KnownStores returns every store the stores tab fetched, whatever its
// search. Dialogs that pick a store offer these.
func KnownStores(m *tui.Model) []models.Store {
	return m.Stores.All()
}
