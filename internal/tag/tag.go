// Package tag turns human-readable names into identifier and filesystem safe tags.
package tag

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '-'

// Of returns the tag form of name: accents folded, lowercased, and every run
// of characters other than letters and digits collapsed into a single '-'.
// Leading and trailing separators are dropped, so "  Intro to Systems! "
// becomes "intro-to-systems".
func Of(name string) string {
	folded := foldAccents(name)

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteRune(separator)
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// Prefixed returns prefix and the tag of name joined by '_'. An empty tag
// yields the prefix alone.
func Prefixed(name, prefix string) string {
	t := Of(name)
	switch {
	case prefix == "":
		return t
	case t == "":
		return prefix
	default:
		return prefix + "_" + t
	}
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
