package hygiene

import (
	"errors"

	"github.com/shiptrack/inputguard/pkg/validator"
)

var (
	// ErrMaliciousContent is reported when raw input carries a known injection signature.
	ErrMaliciousContent = errors.New("malicious content detected")

	// ErrUnknownField is returned by Guard.Check for a Field with no pattern.
	ErrUnknownField = errors.New("unknown field kind")

	// ErrRequired is reported for a blank value in a field that needs one.
	ErrRequired = validator.ErrFieldRequired
	// ErrTooShort is reported when a value is under the field's minimum rune length.
	ErrTooShort = validator.ErrTooShort
	// ErrTooLong is reported when a value exceeds the field's maximum rune length.
	ErrTooLong = validator.ErrTooLong
	// ErrPatternMismatch is reported when a sanitized value does not fit the field's pattern.
	ErrPatternMismatch = validator.ErrInvalidFormat
)
