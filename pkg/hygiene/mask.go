package hygiene

import (
	"regexp"

	"github.com/shiptrack/inputguard/pkg/sanitizer"
)

// Kind selects the masking format.
type Kind string

const (
	KindPhone Kind = "phone"
	KindEmail Kind = "email"
)

const maskRune = 'X'

var phoneGroupsRegex = regexp.MustCompile(`(\+?[1-9]\d{0,2})-?(\d{3})-?(\d{3})-?(\d{2})(\d{2})`)

// MaskSensitiveData hides most of a phone number or e-mail address for display.
//
// A phone keeps its country code and last two digits: "+1-555-123-4567"
// becomes "+1-XXX-XXX-XX67". An e-mail keeps the first character of the
// local part and the domain: "user@example.com" becomes "uXXX@example.com".
// Values that do not fit the expected shape, and unknown kinds, are
// returned unchanged.
func MaskSensitiveData(value string, kind Kind) string {
	switch kind {
	case KindPhone:
		masked, _ := maskPhone(value)
		return masked
	case KindEmail:
		return sanitizer.MaskEmail(value, maskRune)
	default:
		return value
	}
}

// maskPhone rewrites the first grouped phone number in v and reports whether one was found.
func maskPhone(v string) (string, bool) {
	loc := phoneGroupsRegex.FindStringSubmatchIndex(v)
	if loc == nil {
		return v, false
	}

	dst := phoneGroupsRegex.ExpandString(nil, "${1}-XXX-XXX-XX${5}", v, loc)
	return v[:loc[0]] + string(dst) + v[loc[1]:], true
}
