package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Strip removes combining diacritical marks from s. Idempotent.
func Strip(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// Fold returns a representation suitable for accent- and case-insensitive
// comparison.
func Fold(s string) string {
	return strings.ToLower(Strip(s))
}

// ContainsFold reports whether sub occurs in s, ignoring accents and case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}
