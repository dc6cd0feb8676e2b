package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MarkupChars are the characters that can open or close markup, attribute
// values or entities once text is rendered.
const MarkupChars = `<>"'&`

// StripScriptTags removes all <script> blocks together with their content.
// Matching is case-insensitive and spans line breaks.
func StripScriptTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return scriptBlockRegex.ReplaceAllString(s, "")
}

// StripTags removes anything shaped like an HTML tag. Tag content is kept,
// so run StripScriptTags first when script bodies must go too.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return htmlTagRegex.ReplaceAllString(s, "")
}

// StripMarkupChars removes MarkupChars from s.
func StripMarkupChars(s string) string {
	return RemoveChars(s, MarkupChars)
}

// FoldCompat applies Unicode compatibility normalisation (NFKC), mapping
// full-width and other presentation forms onto their canonical characters.
// "＜ｓｃｒｉｐｔ" folds to "<script".
func FoldCompat(s string) string {
	if norm.NFKC.IsNormalString(s) {
		return s
	}
	return norm.NFKC.String(s)
}
