package hygiene

import "github.com/shiptrack/inputguard/pkg/sanitizer"

var sanitize = sanitizer.Compose(
	sanitizer.Trim,
	sanitizer.StripScriptTags,
	sanitizer.StripTags,
	sanitizer.StripMarkupChars,
	sanitizer.Trim,
)

// Sanitize trims input, drops <script> blocks and any other tags, then
// removes the characters < > " ' &. It is idempotent.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return sanitize(input)
}

// Validate reports whether the sanitized form of input matches p.
func Validate(input string, p Pattern) bool {
	return p.MatchString(Sanitize(input))
}
