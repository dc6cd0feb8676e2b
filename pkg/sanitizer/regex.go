package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// <script ...>...</script>, case-insensitive, spanning lines
	scriptBlockRegex = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)

	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
)
