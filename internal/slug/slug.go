// Package slug derives URL-safe identifiers from display names.
//
// Category and city slugs are the public identity of directory pages
// ("wedding-venue", "new-york"), so derivation must be deterministic:
// the same name always yields the same slug.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From converts a display name into a lowercase hyphenated slug.
// Accented characters are folded to ASCII, runs of anything outside
// [a-z0-9] collapse to a single hyphen, and leading/trailing hyphens
// are stripped.
func From(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
