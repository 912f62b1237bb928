package datatable

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/dressdash/internal/config"
)

// KeyMap holds the bindings the table reacts to.
type KeyMap struct {
	Search     key.Binding
	Columns    key.Binding
	PrevColumn key.Binding
	NextColumn key.Binding
	ToggleSort key.Binding
	SortAsc    key.Binding
	SortDesc   key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Export     key.Binding
	PrevRow    key.Binding
	NextRow    key.Binding

	// Used inside the search input and the columns menu
	Toggle key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// NewKeyMap builds the table bindings from the configured key mappings.
// Arrow keys always work alongside the configured row and column keys.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Search:     key.NewBinding(key.WithKeys(km.Search), key.WithHelp(km.Search, "search")),
		Columns:    key.NewBinding(key.WithKeys(km.Columns), key.WithHelp(km.Columns, "columns")),
		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		ToggleSort: key.NewBinding(key.WithKeys(km.ToggleSort, "enter"), key.WithHelp(km.ToggleSort, "sort")),
		SortAsc:    key.NewBinding(key.WithKeys(km.SortAsc), key.WithHelp(km.SortAsc, "sort ascending")),
		SortDesc:   key.NewBinding(key.WithKeys(km.SortDesc), key.WithHelp(km.SortDesc, "sort descending")),
		PrevPage:   key.NewBinding(key.WithKeys(km.PrevPage), key.WithHelp(km.PrevPage, "prev page")),
		NextPage:   key.NewBinding(key.WithKeys(km.NextPage), key.WithHelp(km.NextPage, "next page")),
		Export:     key.NewBinding(key.WithKeys(km.Export), key.WithHelp(km.Export, "export")),
		PrevRow:    key.NewBinding(key.WithKeys(km.PrevRow, "up"), key.WithHelp(km.PrevRow+"/↑", "up")),
		NextRow:    key.NewBinding(key.WithKeys(km.NextRow, "down"), key.WithHelp(km.NextRow+"/↓", "down")),

		Toggle: key.NewBinding(key.WithKeys("space", "x"), key.WithHelp("space", "toggle")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// DefaultKeyMap returns the bindings for the default key mappings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeyMappings())
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Columns, k.ToggleSort, k.PrevPage, k.NextPage, k.Export}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevRow, k.NextRow, k.PrevColumn, k.NextColumn},
		{k.ToggleSort, k.SortAsc, k.SortDesc},
		{k.Search, k.Columns, k.Export},
		{k.PrevPage, k.NextPage},
	}
}
