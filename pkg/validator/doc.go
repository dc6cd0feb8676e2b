// Package validator provides declarative validation rules that carry
// translation-friendly error metadata.
//
// A Rule pairs a boolean Check with a ValidationError describing the
// failure. Rules are evaluated with Apply, which collects every failure, or
// ApplyFirst, which stops at the first one. Both return ValidationErrors, a
// slice type that satisfies the error interface.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `pattern_rules.go`). Every exported rule constructor simply builds and
// returns a Rule value; there is no hidden global state, so the package is
// stateless and goroutine-safe.
//
// Core building blocks:
//   - Rule              – Check func plus error metadata
//   - ValidationError   – one failure, with i18n key, values and a sentinel
//   - ValidationErrors  – slice type implementing error and Unwrap() []error
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.RequiredString("pickup", pickup),
//	    validator.MaxLenString("pickup", pickup, 200),
//	    validator.MatchesPattern("pickup", pickup, addressRe, "address"),
//	)
//	if errors.Is(err, validator.ErrInvalidFormat) {
//	    // show the format hint
//	}
//
// # Error Handling
//
// ValidationErrors unwraps to ErrValidationFailed and to the Err sentinel of
// each entry, so errors.Is works for both the broad and the specific case.
// Individual field errors can be inspected with Has, Get, GetErrors and
// Fields. Merge combines the results of several independent validations.
package validator
