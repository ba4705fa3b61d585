package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/district"
)

// ValidateRequired checks that a field is not blank
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ValidateMaxLength checks the maximum length of a string
func ValidateMaxLength(value string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%s must be at most %d characters long", fieldName, maxLength)
	}
	return nil
}

// ValidateMinLength checks the minimum length of a string
func ValidateMinLength(value string, minLength int, fieldName string) error {
	if utf8.RuneCountInString(value) < minLength {
		return fmt.Errorf("%s must be at least %d characters long", fieldName, minLength)
	}
	return nil
}

// ValidateEmail checks basic email shape
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("email must have a valid format")
	}
	return nil
}

// ValidateDistrict checks membership in the district catalog
func ValidateDistrict(name string) error {
	if err := ValidateRequired(name, "district"); err != nil {
		return err
	}
	if !district.Valid(name) {
		return fmt.Errorf("unknown district: %s", name)
	}
	return nil
}

// ValidateDateRange checks that the end date is on or after the start
// date. Same-day spans are valid; seminars are often single-day.
func ValidateDateRange(startDate time.Time, endDate *time.Time) error {
	if endDate != nil && endDate.Before(startDate) {
		return errors.New("end date must be on or after start date")
	}
	return nil
}

// EventValidation groups the event form checks
type EventValidation struct{}

// ValidateTitle checks an event title
func (v EventValidation) ValidateTitle(title string) error {
	if err := ValidateRequired(title, "title"); err != nil {
		return err
	}
	return ValidateMaxLength(title, 200, "title")
}

// ValidateLocation checks an event location
func (v EventValidation) ValidateLocation(location string) error {
	if err := ValidateRequired(location, "location"); err != nil {
		return err
	}
	return ValidateMaxLength(location, 200, "location")
}
