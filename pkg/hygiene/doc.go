// Package hygiene is the input-hygiene layer used by the shipment, login and
// tracking forms. It sanitizes free text, validates it against a fixed set
// of patterns, detects common script-injection payloads, masks phone numbers
// and e-mail addresses for display and generates short random identifiers.
//
// # Functions
//
// The package-level functions are pure and never fail; on input they cannot
// work with they return a safe default (the empty string, false or the
// value unchanged):
//
//	clean := hygiene.Sanitize(`<script>alert(1)</script>Hello`) // "Hello"
//	ok    := hygiene.Validate("JOB001SHIP", rules.ShipmentID)   // true
//	bad   := hygiene.DetectMaliciousContent("javascript:alert(1)") // true
//	shown := hygiene.MaskSensitiveData("user@example.com", hygiene.KindEmail)
//	id    := hygiene.GenerateID(8)
//
// Sanitize is idempotent and Validate always matches the sanitized form.
//
// # Guard
//
// Guard fuses the checks into one pipeline with a fixed order: detection on
// the raw value, sanitization, required/length checks, then the pattern.
// Unlike the package-level functions it reports why a value was rejected,
// through validator.ValidationErrors that unwrap to ErrMaliciousContent,
// ErrRequired, ErrTooShort, ErrTooLong or ErrPatternMismatch:
//
//	g := hygiene.New(hygiene.WithLogger(log))
//	pickup, err := g.Check(ctx, "pickup", hygiene.FieldAddress, raw)
//	switch {
//	case errors.Is(err, hygiene.ErrMaliciousContent):
//	case errors.Is(err, hygiene.ErrPatternMismatch):
//	}
//
// A Guard also applies strict phone masking: numbers that do not fit the
// country-code + 3-3-4 grouping have every digit but the last two replaced,
// instead of being shown unchanged.
//
// # Configuration
//
// Rules is an immutable record of the recognised patterns and the fixed
// error-message table. DefaultRules returns it; pass it by value. Guard
// settings can be read from the environment with LoadConfig.
package hygiene
