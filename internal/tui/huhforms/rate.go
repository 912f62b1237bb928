package huhforms

import (
	"strconv"

	"charm.land/huh/v2"
)

// RateFields are the values bound to the exchange rate form
type RateFields struct {
	Rate    string
	Confirm bool
}

// RateFieldsFrom prefills the current rate, empty when unknown
func RateFieldsFrom(rate float64) RateFields {
	f := RateFields{Confirm: true}
	if rate > 0 {
		f.Rate = strconv.FormatFloat(rate, 'f', -1, 64)
	}
	return f
}

// Value parses the rate
func (f RateFields) Value() (float64, error) {
	v, err := parsePositiveFloat(f.Rate)
	if err != nil {
		return 0, fieldErr("exchange rate", err)
	}
	return v, nil
}

// CreateRateForm creates the USD to EGP exchange rate form
func CreateRateForm(f *RateFields) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("rate").
			Title("USD → EGP").
			Description("Used to price jobs that did not record their own rate").
			Validate(positiveFloat).
			Value(&f.Rate),

		huh.NewConfirm().
			Key("confirm").
			Title("Update the exchange rate?").
			Affirmative("Yes").
			Negative("No").
			Value(&f.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
