// Package sanitizer provides the small string transformations that the
// input-hygiene layer is built from.
//
// The functions are grouped conceptually into a few areas:
//
//   - Strings – trimming, case folding and character removal.
//
//   - Markup – removal of <script> blocks, bare HTML-like tags and the
//     characters that could re-open markup once the text is rendered.
//
//   - Masking – display-only obfuscation of e-mail local parts and digit
//     runs, preserving enough structure for a human to recognise the value.
//
//   - Unicode – compatibility folding (NFKC) so that full-width or otherwise
//     decorated look-alikes can be compared with their ASCII forms.
//
// All helpers are stateless and take and return plain strings. The
// higher-order Apply and Compose helpers build pipelines from them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.StripScriptTags,
//	    sanitizer.StripTags,
//	)
//
//	safe := clean("  <script>alert(1)</script><b>Hello</b> ") // "Hello"
//
// # Usage
//
//	import "github.com/shiptrack/inputguard/pkg/sanitizer"
//
//	masked := sanitizer.MaskEmail("user@example.com", 'X')
//	// masked == "uXXX@example.com"
//
// # Error handling
//
// None of the helpers returns an error. They always fall back to a safe
// result, usually the original input or an empty string.
//
// # Performance
//
// Regular expressions are compiled once at package initialisation and are
// only read afterwards, so every helper is safe for concurrent use.
package sanitizer
