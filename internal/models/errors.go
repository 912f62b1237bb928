package models

import (
	"errors"
	"fmt"
)

// Validation errors for records decoded from the API
var (
	// ErrMissingID indicates a record arrived without its identifier
	ErrMissingID = errors.New("record is missing its identifier")

	// ErrInvalidStoreKind indicates a store kind outside Market, Mall, Personal
	ErrInvalidStoreKind = errors.New("invalid store kind")

	// ErrRequiredField indicates an empty required form field
	ErrRequiredField = errors.New("field is required")

	// ErrNonPositive indicates a limit or price that must be above zero
	ErrNonPositive = errors.New("value must be greater than zero")

	// ErrNegative indicates a count or price below zero
	ErrNegative = errors.New("value must not be negative")

	// ErrInvalidChoice indicates a value outside a fixed set, like a role
	// or a download method
	ErrInvalidChoice = errors.New("value is not one of the allowed choices")

	// ErrInvalidPhone indicates a number that is not in E.164 form
	ErrInvalidPhone = errors.New("phone must be in E.164 form, like +201001234567")
)

func requireID(record, id string) error {
	if id == "" {
		return fmt.Errorf("%s: %w", record, ErrMissingID)
	}
	return nil
}

func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func fieldError(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}
