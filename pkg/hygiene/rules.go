package hygiene

import (
	"regexp"
	"strings"
)

// Length limits, in runes.
const (
	ShipmentIDMinLen  = 6
	ShipmentIDMaxLen  = 12
	AddressMaxLen     = 200
	DescriptionMaxLen = 500
	NotesMaxLen       = 300
)

// Field names a recognised input shape.
type Field string

const (
	FieldShipmentID  Field = "shipment_id"
	FieldAddress     Field = "address"
	FieldDescription Field = "description"
	FieldNotes       Field = "notes"
	FieldPhone       Field = "phone"
	FieldEmail       Field = "email"
)

// Fields lists every recognised Field.
func Fields() []Field {
	return []Field{FieldShipmentID, FieldAddress, FieldDescription, FieldNotes, FieldPhone, FieldEmail}
}

// ParseField accepts a Field name case-insensitively, with "-" or "_".
func ParseField(s string) (Field, bool) {
	f := Field(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range Fields() {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// spaceClass is the whitespace set of ECMAScript \s. RE2's \s is ASCII-only
// and misses no-break and other Unicode spaces.
const spaceClass = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	shipmentIDRegex  = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)
	addressRegex     = regexp.MustCompile(`^[a-zA-Z0-9` + spaceClass + `,.'-]{1,200}$`)
	descriptionRegex = regexp.MustCompile(`^[a-zA-Z0-9` + spaceClass + `,.'\-!?()]{1,500}$`)
	notesRegex       = regexp.MustCompile(`^[a-zA-Z0-9` + spaceClass + `,.'\-!?()]{0,300}$`)
	phoneRegex       = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emailRegex       = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)
)

// Pattern is a named, pre-compiled input shape. The zero Pattern matches nothing.
type Pattern struct {
	name   string
	re     *regexp.Regexp
	minLen int
	maxLen int
}

// NewPattern builds a Pattern for use in custom Rules. minLen and maxLen are
// rune counts; 0 means the value may be empty and no upper limit,
// respectively. Negative bounds are treated as 0. A nil re yields a Pattern
// that matches nothing and that Rules.Pattern reports as missing.
func NewPattern(name string, re *regexp.Regexp, minLen, maxLen int) Pattern {
	return Pattern{name: name, re: re, minLen: max(minLen, 0), maxLen: max(maxLen, 0)}
}

func (p Pattern) Name() string { return p.name }

// MatchString reports whether s has the pattern's shape.
func (p Pattern) MatchString(s string) bool {
	return p.re != nil && p.re.MatchString(s)
}

// Regexp returns the compiled expression.
func (p Pattern) Regexp() *regexp.Regexp { return p.re }

// MinLen is the minimum length in runes; 0 means the field may be empty.
func (p Pattern) MinLen() int { return p.minLen }

// MaxLen is the maximum length in runes; 0 means no explicit limit.
func (p Pattern) MaxLen() int { return p.maxLen }

// Optional reports whether an empty value is acceptable.
func (p Pattern) Optional() bool { return p.re != nil && p.minLen == 0 }

func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// ErrorMessages is the fixed table of user-facing error strings. Each
// field's text is the English default for the matching Message* catalog key.
type ErrorMessages struct {
	InvalidInput     string
	Unauthorized     string
	ServerError      string
	NetworkError     string
	ValidationFailed string
}

// Catalog keys for ErrorMessages, resolvable through pkg/messages.
const (
	MessageInvalidInput     = "errors.invalid_input"
	MessageUnauthorized     = "errors.unauthorized"
	MessageServerError      = "errors.server_error"
	MessageNetworkError     = "errors.network_error"
	MessageValidationFailed = "errors.validation_failed"
)

// Rules is the immutable validation configuration shared by every check.
type Rules struct {
	ShipmentID  Pattern
	Address     Pattern
	Description Pattern
	Notes       Pattern
	Phone       Pattern
	Email       Pattern

	Messages ErrorMessages
}

// DefaultRules returns the recognised patterns and the English error table.
func DefaultRules() Rules {
	return Rules{
		ShipmentID:  Pattern{name: "shipment id", re: shipmentIDRegex, minLen: ShipmentIDMinLen, maxLen: ShipmentIDMaxLen},
		Address:     Pattern{name: "address", re: addressRegex, minLen: 1, maxLen: AddressMaxLen},
		Description: Pattern{name: "description", re: descriptionRegex, minLen: 1, maxLen: DescriptionMaxLen},
		Notes:       Pattern{name: "notes", re: notesRegex, minLen: 0, maxLen: NotesMaxLen},
		Phone:       Pattern{name: "phone", re: phoneRegex, minLen: 2},
		Email:       Pattern{name: "email", re: emailRegex, minLen: 1},
		Messages: ErrorMessages{
			InvalidInput:     "Invalid input format. Please check your entry.",
			Unauthorized:     "Access denied. Please login again.",
			ServerError:      "Service temporarily unavailable. Please try again later.",
			NetworkError:     "Connection error. Please check your internet connection.",
			ValidationFailed: "Please correct the errors before submitting.",
		},
	}
}

// Pattern returns the pattern registered for f.
func (r Rules) Pattern(f Field) (Pattern, bool) {
	var p Pattern
	switch f {
	case FieldShipmentID:
		p = r.ShipmentID
	case FieldAddress:
		p = r.Address
	case FieldDescription:
		p = r.Description
	case FieldNotes:
		p = r.Notes
	case FieldPhone:
		p = r.Phone
	case FieldEmail:
		p = r.Email
	}
	return p, p.re != nil
}
