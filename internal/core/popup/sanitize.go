package popup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var blockedSchemes = []string{"javascript:", "data:", "file:", "vbscript:"}

// SanitizeText strips ASCII control characters other than newline and tab
// and trims surrounding whitespace.
func SanitizeText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// ClampText sanitizes s and cuts it to at most limit characters. The second
// result reports whether anything was cut.
func ClampText(s string, limit int) (string, bool) {
	s = SanitizeText(s)
	if utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	runes := []rune(s)
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace), true
}

// SanitizeURL removes every ASCII control character, including tab and
// newline, and trims whitespace. Browsers ignore those characters inside a
// scheme, so "java\tscript:" must be caught as "javascript:".
func SanitizeURL(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// IsSafeURL reports whether u is non-empty and does not use a blocked
// scheme once sanitized.
func IsSafeURL(u string) bool {
	u = strings.ToLower(SanitizeURL(u))
	if u == "" {
		return false
	}
	for _, scheme := range blockedSchemes {
		if strings.HasPrefix(u, scheme) {
			return false
		}
	}
	return true
}
