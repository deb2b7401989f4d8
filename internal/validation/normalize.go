package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultScheme = "https://"

// NormalizeURL lowercases a leading capital (mobile keyboards like to add one)
// and prefixes https:// when the input does not already start with "http".
func NormalizeURL(raw string) string {
	if r, size := utf8.DecodeRuneInString(raw); unicode.IsUpper(r) {
		raw = string(unicode.ToLower(r)) + raw[size:]
	}
	if !strings.HasPrefix(raw, "http") {
		raw = defaultScheme + raw
	}
	return raw
}
