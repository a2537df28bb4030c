package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidDate is returned when a birth date is not a real DD/MM/YYYY calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
