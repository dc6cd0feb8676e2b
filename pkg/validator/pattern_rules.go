package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern validates value against a pre-compiled expression.
// It does not reject blank input on its own; whether an empty value is
// acceptable is left to the expression.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re != nil && re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
			Err: ErrInvalidFormat,
		},
	}
}
