package huhforms

import (
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// DefaultCurrency is offered for new packages
const DefaultCurrency = "EGP"

// PackageFields are the values bound to the package form
type PackageFields struct {
	Name                    string
	PricePerDress           string
	Currency                string
	ImagesPerDress          string
	UseConsistentBackground bool
	// PromptsOrder holds one prompt id per line
	PromptsOrder string
	Confirm      bool
}

// NewPackageFields returns the defaults for a new package
func NewPackageFields() PackageFields {
	return PackageFields{Currency: DefaultCurrency, ImagesPerDress: "1", Confirm: true}
}

// PackageFieldsFrom prefills the form with an existing package
func PackageFieldsFrom(p models.Package) PackageFields {
	return PackageFields{
		Name:                    p.Name,
		PricePerDress:           strconv.FormatFloat(p.PricePerDress, 'f', -1, 64),
		Currency:                p.Currency,
		ImagesPerDress:          strconv.Itoa(p.ImagesPerDress),
		UseConsistentBackground: p.UseConsistentBackground,
		PromptsOrder:            strings.Join(p.PromptsOrder, "\n"),
		Confirm:                 true,
	}
}

// Input converts the fields into a create or update payload
func (f PackageFields) Input() (models.PackageInput, error) {
	price, err := parsePositiveFloat(f.PricePerDress)
	if err != nil {
		return models.PackageInput{}, fieldErr("price per dress", err)
	}
	images, err := parsePositiveInt(f.ImagesPerDress)
	if err != nil {
		return models.PackageInput{}, fieldErr("images per dress", err)
	}

	order := []string{}
	for _, line := range strings.FieldsFunc(f.PromptsOrder, func(r rune) bool { return r == '\n' || r == ',' }) {
		if id := strings.TrimSpace(line); id != "" {
			order = append(order, id)
		}
	}

	in := models.PackageInput{
		Name:                    strings.TrimSpace(f.Name),
		PricePerDress:           price,
		Currency:                strings.ToUpper(strings.TrimSpace(f.Currency)),
		ImagesPerDress:          images,
		UseConsistentBackground: f.UseConsistentBackground,
		PromptsOrder:            order,
	}
	return in, in.Validate()
}

// CreatePackageForm creates a huh form for adding/editing a package
func CreatePackageForm(f *PackageFields, editing bool) *huh.Form {
	confirmTitle := "Create this package?"
	if editing {
		confirmTitle = "Save changes?"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Package Name").
			Placeholder("Basic, Pro, Elite...").
			Validate(required).
			Value(&f.Name),

		huh.NewInput().
			Key("price_per_dress").
			Title("Price/Dress").
			Validate(positiveFloat).
			Value(&f.PricePerDress),

		huh.NewInput().
			Key("currency").
			Title("Currency").
			Validate(required).
			Value(&f.Currency),

		huh.NewInput().
			Key("images_per_dress").
			Title("Images/Dress").
			Validate(positiveInt).
			Value(&f.ImagesPerDress),

		huh.NewConfirm().
			Key("use_consistent_background").
			Title("Use the same background for every image?").
			Affirmative("Yes").
			Negative("No").
			Value(&f.UseConsistentBackground),

		huh.NewText().
			Key("prompts_order").
			Title("Prompt order (one prompt id per line)").
			Lines(4).
			Value(&f.PromptsOrder),

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
