package hygiene

import (
	"regexp"

	"github.com/shiptrack/inputguard/pkg/sanitizer"
)

// Signature names a known injection payload shape.
type Signature string

const (
	SignatureScriptTag        Signature = "script_tag"
	SignatureJavaScriptScheme Signature = "javascript_scheme"
	SignatureEventHandler     Signature = "event_handler"
	SignatureDataHTML         Signature = "data_html"
	SignatureVBScriptScheme   Signature = "vbscript_scheme"
)

type signatureRule struct {
	name Signature
	re   *regexp.Regexp
}

var signatureRules = [...]signatureRule{
	{SignatureScriptTag, regexp.MustCompile(`(?i)<script`)},
	{SignatureJavaScriptScheme, regexp.MustCompile(`(?i)javascript:`)},
	{SignatureEventHandler, regexp.MustCompile(`(?i)on\w+[` + spaceClass + `]*=`)},
	{SignatureDataHTML, regexp.MustCompile(`(?i)data:text/html`)},
	{SignatureVBScriptScheme, regexp.MustCompile(`(?i)vbscript:`)},
}

func (r signatureRule) matches(input, folded string) bool {
	return r.re.MatchString(input) || (folded != input && r.re.MatchString(folded))
}

// DetectMaliciousContent reports whether input carries any known signature,
// either as written or after NFKC folding.
func DetectMaliciousContent(input string) bool {
	if input == "" {
		return false
	}
	folded := sanitizer.FoldCompat(input)
	for _, rule := range signatureRules {
		if rule.matches(input, folded) {
			return true
		}
	}
	return false
}

// MatchedSignatures returns the signatures found in input, in a fixed order.
// It returns nil for clean input.
func MatchedSignatures(input string) []Signature {
	if input == "" {
		return nil
	}
	folded := sanitizer.FoldCompat(input)

	var found []Signature
	for _, rule := range signatureRules {
		if rule.matches(input, folded) {
			found = append(found, rule.name)
		}
	}
	return found
}

func signatureNames(sigs []Signature) []string {
	names := make([]string, len(sigs))
	for i, s := range sigs {
		names[i] = string(s)
	}
	return names
}
