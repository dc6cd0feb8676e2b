package validator

import "errors"

// Common validation errors. Rules attach one of these to ValidationError.Err.
var (
	// ErrValidationFailed matches every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrTooShort is returned when a value is shorter than its minimum length.
	ErrTooShort = errors.New("value too short")

	// ErrTooLong is returned when a value exceeds its maximum length.
	ErrTooLong = errors.New("value too long")

	// ErrInvalidFormat is returned when a field does not match its expected shape.
	ErrInvalidFormat = errors.New("invalid format")
)
