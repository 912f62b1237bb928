package huhforms

import (
	"cmp"
	"slices"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// confirmField is the yes/no question every dialog ends with
func confirmField(title string, value *bool) huh.Field {
	return huh.NewConfirm().
		Key("confirm").
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value)
}

func confirmTitle(thing string, editing bool) string {
	if editing {
		return "Save changes?"
	}
	return "Create this " + thing + "?"
}

// newForm wraps fields in the single group dialogs use
func newForm(fields ...huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

// StoreOptions lists stores by name for a select. The first option is a
// prompt to pick one, so nothing is chosen by accident.
func StoreOptions(stores []models.Store) []huh.Option[string] {
	sorted := slices.Clone(stores)
	slices.SortFunc(sorted, func(a, b models.Store) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	opts := []huh.Option[string]{huh.NewOption("Select a store", "")}
	for _, s := range sorted {
		label := s.Name
		if label == "" {
			label = s.ID
		}
		opts = append(opts, huh.NewOption(label, s.ID))
	}
	return opts
}

// StoreName finds the name of id among stores
func StoreName(stores []models.Store, id string) string {
	for _, s := range stores {
		if s.ID == id {
			return s.Name
		}
	}
	return ""
}

func storeSelect(value *string, stores []models.Store) huh.Field {
	return huh.NewSelect[string]().
		Key("store").
		Title("Store").
		Options(StoreOptions(stores)...).
		Validate(required).
		Value(value)
}
