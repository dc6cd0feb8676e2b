package sanitizer

import "strings"

// MaskEmail keeps the first character of the local part and replaces the
// rest with mask, preserving the domain for user recognition.
// Values without both a local part and a domain are returned unchanged.
func MaskEmail(email string, mask rune) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" {
		return email
	}

	runes := []rune(local)
	masked := string(runes[0]) + strings.Repeat(string(mask), len(runes)-1)
	return masked + "@" + domain
}

// MaskDigits replaces every ASCII digit except the last keepLast with mask.
// Separators and other characters are left in place.
func MaskDigits(s string, keepLast int, mask rune) string {
	if keepLast < 0 {
		keepLast = 0
	}

	total := len(KeepDigits(s))
	hide := total - keepLast
	if hide <= 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	seen := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			seen++
			if seen <= hide {
				b.WriteRune(mask)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
