package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes, removes combining marks, recomposes.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText prepares human-authored text (names, locations) for
// storage and uniqueness comparison: trimmed, lowercased, diacritics
// stripped. Never apply it to identifiers.
func NormalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeEAN normalizes an equipment EAN code: trimmed, lowercased,
// inner whitespace removed. The uniqueness index operates on this form.
func NormalizeEAN(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "")
}
