package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Configuration errors
	ErrMissingConfig = errors.New("missing required configuration")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrInvalidDomain = errors.New("invalid domain format")

	// Input file errors
	ErrCSVNotFound = errors.New("CSV file not found")
	ErrCSVRead     = errors.New("CSV read failed")

	// Row validation errors
	ErrInvalidTicket = errors.New("invalid ticket format")
	ErrNotANumber    = errors.New("hours is not a number")
	ErrNonPositive   = errors.New("hours must be positive")
	ErrTooLarge      = errors.New("hours cannot exceed 24 in a day")
	ErrInvalidDate   = errors.New("invalid date format")
)

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}
