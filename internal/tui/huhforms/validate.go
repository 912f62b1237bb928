package huhforms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	errRequired = errors.New("required")
	errNumber   = errors.New("must be a number")
	errPositive = errors.New("must be greater than zero")
	errNegative = errors.New("must not be negative")
	errTime     = errors.New("use YYYY-MM-DD or YYYY-MM-DD HH:MM")
	errOrder    = errors.New("must not be before the start")
)

// timeLayouts are what the date inputs accept, read in local time
var timeLayouts = []string{"2006-01-02 15:04", "2006-01-02"}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

func positiveInt(s string) error {
	_, err := parsePositiveInt(s)
	return err
}

func positiveFloat(s string) error {
	_, err := parsePositiveFloat(s)
	return err
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errNumber
	}
	if n <= 0 {
		return 0, errPositive
	}
	return n, nil
}

func parsePositiveFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return 0, errNumber
	}
	if f <= 0 {
		return 0, errPositive
	}
	return f, nil
}

func nonNegativeFloat(s string) error {
	_, err := parseNonNegativeFloat(s)
	return err
}

func parseNonNegativeFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return 0, errNumber
	}
	if f < 0 {
		return 0, errNegative
	}
	return f, nil
}

// optionalTime accepts an empty value or a date the inputs understand
func optionalTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := parseTime(s)
	return err
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(s), time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errTime
}

func fieldErr(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}
