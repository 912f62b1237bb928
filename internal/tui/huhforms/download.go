package huhforms

import (
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/models"
)

// DownloadFields are the values bound to the new download form. The range
// ends are typed as local dates and only used for a custom range.
type DownloadFields struct {
	StoreID string
	Method  string
	From    string
	To      string
	Confirm bool
}

// NewDownloadFields starts from everything since the last download
func NewDownloadFields() DownloadFields {
	return DownloadFields{Method: models.DownloadSinceLast, Confirm: true}
}

// Input converts the fields into a download request. storeName is cached
// by the backend with the record.
func (f DownloadFields) Input(storeName string) (models.DownloadInput, error) {
	in := models.DownloadInput{
		StoreID:        f.StoreID,
		StoreNameCache: storeName,
		Method:         f.Method,
	}
	if f.Method == models.DownloadRange {
		from, err := rangeEnd("from", f.From)
		if err != nil {
			return models.DownloadInput{}, err
		}
		to, err := rangeEnd("to", f.To)
		if err != nil {
			return models.DownloadInput{}, err
		}
		if to.Before(from) {
			return models.DownloadInput{}, fieldErr("to", errOrder)
		}
		in.FromTS = from.UTC().Format(time.RFC3339)
		in.ToTS = to.UTC().Format(time.RFC3339)
	}
	return in, in.Validate()
}

func rangeEnd(field, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, fieldErr(field, errRequired)
	}
	t, err := parseTime(s)
	if err != nil {
		return time.Time{}, fieldErr(field, err)
	}
	return t, nil
}

// CreateDownloadForm creates the new download form. methodLabel names each
// method for the select.
func CreateDownloadForm(f *DownloadFields, stores []models.Store, methodLabel func(string) string) *huh.Form {
	methods := make([]huh.Option[string], len(models.DownloadMethods))
	for i, m := range models.DownloadMethods {
		methods[i] = huh.NewOption(methodLabel(m), m)
	}

	return newForm(
		storeSelect(&f.StoreID, stores),

		huh.NewSelect[string]().
			Key("method").
			Title("Method").
			Options(methods...).
			Value(&f.Method),

		huh.NewInput().
			Key("from").
			Title("From (custom range)").
			Placeholder("2024-05-01 09:00").
			Validate(optionalTime).
			Value(&f.From),

		huh.NewInput().
			Key("to").
			Title("To (custom range)").
			Placeholder("2024-05-31").
			Validate(optionalTime).
			Value(&f.To),

		confirmField("Prepare this download?", &f.Confirm),
	)
}
