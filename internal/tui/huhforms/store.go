package huhforms

import (
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// Store defaults for new stores
const (
	DefaultMaxImagesPerHour = 100
	DefaultMaxImagesPerMsg  = 10
)

// StoreFields are the values bound to the store form. Limits are kept as
// text so huh inputs can edit them.
type StoreFields struct {
	Name             string
	Kind             string
	Address          string
	PackageID        string
	MaxImagesPerHour string
	MaxImagesPerMsg  string
	Confirm          bool
}

// NewStoreFields returns the defaults for a new store
func NewStoreFields() StoreFields {
	return StoreFields{
		Kind:             models.StoreKindMarket,
		MaxImagesPerHour: strconv.Itoa(DefaultMaxImagesPerHour),
		MaxImagesPerMsg:  strconv.Itoa(DefaultMaxImagesPerMsg),
		Confirm:          true,
	}
}

// StoreFieldsFrom prefills the form with an existing store
func StoreFieldsFrom(s models.Store) StoreFields {
	f := StoreFields{
		Name:             s.Name,
		Kind:             s.Kind,
		Address:          s.Address,
		PackageID:        s.PackageID,
		MaxImagesPerHour: strconv.Itoa(s.MaxImagesPerHour),
		MaxImagesPerMsg:  strconv.Itoa(s.MaxImagesPerMsg),
		Confirm:          true,
	}
	if f.Kind == "" {
		f.Kind = models.StoreKindMarket
	}
	return f
}

// Input converts the fields into a create payload
func (f StoreFields) Input() (models.StoreInput, error) {
	perHour, err := parsePositiveInt(f.MaxImagesPerHour)
	if err != nil {
		return models.StoreInput{}, fieldErr("max images per hour", err)
	}
	perMsg, err := parsePositiveInt(f.MaxImagesPerMsg)
	if err != nil {
		return models.StoreInput{}, fieldErr("max images per message", err)
	}
	in := models.StoreInput{
		Name:             strings.TrimSpace(f.Name),
		Kind:             f.Kind,
		Address:          strings.TrimSpace(f.Address),
		PackageID:        f.PackageID,
		MaxImagesPerHour: perHour,
		MaxImagesPerMsg:  perMsg,
	}
	return in, in.Validate()
}

// Patch returns only the fields that differ from orig
func (f StoreFields) Patch(orig models.Store) (models.StorePatch, error) {
	in, err := f.Input()
	if err != nil {
		return models.StorePatch{}, err
	}

	var p models.StorePatch
	if in.Name != orig.Name {
		p.Name = &in.Name
	}
	if in.Kind != orig.Kind {
		p.Kind = &in.Kind
	}
	if in.Address != orig.Address {
		p.Address = &in.Address
	}
	if in.PackageID != orig.PackageID {
		p.PackageID = &in.PackageID
	}
	if in.MaxImagesPerHour != orig.MaxImagesPerHour {
		p.MaxImagesPerHour = &in.MaxImagesPerHour
	}
	if in.MaxImagesPerMsg != orig.MaxImagesPerMsg {
		p.MaxImagesPerMsg = &in.MaxImagesPerMsg
	}
	return p, nil
}

// PackageOptions lists packages for a select, with a leading "none". A
// current id missing from packages is kept as its own option so the select
// does not silently switch the store to another package.
func PackageOptions(packages []models.Package, current string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("No package", "")}
	found := current == ""
	for _, p := range packages {
		opts = append(opts, huh.NewOption(p.Name, p.ID))
		found = found || p.ID == current
	}
	if !found {
		opts = append(opts, huh.NewOption(current+" (not loaded)", current))
	}
	return opts
}

// CreateStoreForm creates a huh form for adding/editing a store
func CreateStoreForm(f *StoreFields, packages []models.Package, editing bool) *huh.Form {
	confirmTitle := "Create this store?"
	if editing {
		confirmTitle = "Save changes?"
	}

	kinds := make([]huh.Option[string], len(models.StoreKinds))
	for i, k := range models.StoreKinds {
		kinds[i] = huh.NewOption(k, k)
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Store Name").
			Placeholder("Enter store name...").
			Validate(required).
			Value(&f.Name),

		huh.NewSelect[string]().
			Key("kind").
			Title("Kind").
			Options(kinds...).
			Value(&f.Kind),

		huh.NewText().
			Key("address").
			Title("Address (optional)").
			CharLimit(300).
			Lines(2).
			Value(&f.Address),

		huh.NewSelect[string]().
			Key("package").
			Title("Package").
			Options(PackageOptions(packages, f.PackageID)...).
			Value(&f.PackageID),

		huh.NewInput().
			Key("max_images_per_hour").
			Title("Max Images/Hour").
			Validate(positiveInt).
			Value(&f.MaxImagesPerHour),

		huh.NewInput().
			Key("max_images_per_msg").
			Title("Max Images/Message").
			Validate(positiveInt).
			Value(&f.MaxImagesPerMsg),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&f.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
