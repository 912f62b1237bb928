package huhforms

import (
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// CreditItemFields are the values bound to the credit catalog form
type CreditItemFields struct {
	JobType       string
	JobName       string
	CreditsPerJob string
	Confirm       bool
}

// NewCreditItemFields returns the defaults for a new catalog entry
func NewCreditItemFields() CreditItemFields {
	return CreditItemFields{JobType: models.JobTypeImage, CreditsPerJob: "1", Confirm: true}
}

// CreditItemFieldsFrom prefills the form with an existing entry
func CreditItemFieldsFrom(c models.CreditItem) CreditItemFields {
	f := CreditItemFields{
		JobType:       c.JobType,
		JobName:       c.JobName,
		CreditsPerJob: strconv.FormatFloat(c.CreditsPerJob, 'f', -1, 64),
		Confirm:       true,
	}
	if f.JobType == "" {
		f.JobType = models.JobTypeImage
	}
	return f
}

// Input converts the fields into a create or update payload
func (f CreditItemFields) Input() (models.CreditItemInput, error) {
	credits, err := parseNonNegativeFloat(f.CreditsPerJob)
	if err != nil {
		return models.CreditItemInput{}, fieldErr("credits per job", err)
	}
	in := models.CreditItemInput{
		JobType:       f.JobType,
		JobName:       strings.TrimSpace(f.JobName),
		CreditsPerJob: credits,
	}
	return in, in.Validate()
}

// CreateCreditItemForm creates a huh form for adding/editing a catalog entry
func CreateCreditItemForm(f *CreditItemFields, editing bool) *huh.Form {
	return newForm(
		huh.NewSelect[string]().
			Key("job_type").
			Title("Job Type").
			Options(
				huh.NewOption("Image", models.JobTypeImage),
				huh.NewOption("Video", models.JobTypeVideo),
			).
			Value(&f.JobType),

		huh.NewInput().
			Key("job_name").
			Title("Job Name").
			Placeholder("Studio shot, reel...").
			Validate(required).
			Value(&f.JobName),

		huh.NewInput().
			Key("credits_per_job").
			Title("Credits/Job").
			Validate(nonNegativeFloat).
			Value(&f.CreditsPerJob),

		confirmField(confirmTitle("catalog entry", editing), &f.Confirm),
	)
}

// PromptFields are the values bound to the prompt form
type PromptFields struct {
	Name    string
	Text    string
	Confirm bool
}

// NewPromptFields returns an empty prompt
func NewPromptFields() PromptFields {
	return PromptFields{Confirm: true}
}

// PromptFieldsFrom prefills the form with an existing prompt
func PromptFieldsFrom(p models.Prompt) PromptFields {
	return PromptFields{Name: p.Name, Text: p.PromptText, Confirm: true}
}

// Input converts the fields into a global prompt payload
func (f PromptFields) Input() (models.PromptInput, error) {
	in := models.PromptInput{
		Name:       strings.TrimSpace(f.Name),
		PromptText: strings.TrimSpace(f.Text),
		Scope:      models.ScopeGlobal,
	}
	return in, in.Validate()
}

// CreatePromptForm creates a huh form for adding/editing a prompt
func CreatePromptForm(f *PromptFields, editing bool) *huh.Form {
	return newForm(
		huh.NewInput().
			Key("name").
			Title("Prompt Name").
			Validate(required).
			Value(&f.Name),

		huh.NewText().
			Key("prompt_text").
			Title("Prompt").
			Lines(8).
			Validate(required).
			Value(&f.Text),

		confirmField(confirmTitle("prompt", editing), &f.Confirm),
	)
}

// LookupFields are the values bound to the payment purpose and payment
// method forms, which only carry a name
type LookupFields struct {
	Name    string
	Confirm bool
}

// NewLookupFields prefills name, empty when adding
func NewLookupFields(name string) LookupFields {
	return LookupFields{Name: name, Confirm: true}
}

// Value returns the trimmed name
func (f LookupFields) Value() (string, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return "", fieldErr("name", errRequired)
	}
	return name, nil
}

// CreateLookupForm creates the single name form; thing is what is named,
// e.g. "payment method"
func CreateLookupForm(f *LookupFields, thing string, editing bool) *huh.Form {
	return newForm(
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Enter " + thing + " name...").
			Validate(required).
			Value(&f.Name),

		confirmField(confirmTitle(thing, editing), &f.Confirm),
	)
}
