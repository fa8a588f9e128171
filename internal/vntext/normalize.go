// Package vntext provides text canonicalization and sentence-splitting
// helpers for comparing learner answers against Vietnamese target words.
package vntext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes text into base letters plus combining marks (NFD)
// and strips the combining marks. The transformer is stateless and safe
// for concurrent use.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize canonicalizes a string for answer comparison. It applies, in
// order: lowercase folding, decomposition of diacritic characters into base
// letter plus combining marks, removal of all combining marks, and trimming
// of leading/trailing whitespace.
//
// The function is pure and idempotent: Normalize(Normalize(s)) == Normalize(s).
// All tonal variants of a Vietnamese base letter normalize to the same string
// (e.g. "a", "á", "à", "ả", "ã", "ạ" all become "a"). Note that "đ" carries
// no combining mark and is preserved as-is, matching how NFD decomposition
// treats it.
func Normalize(s string) string {
	lowered := strings.ToLower(s)

	folded, _, err := transform.String(foldMarks, lowered)
	if err != nil {
		// transform.String only fails on malformed input; fall back to the
		// lowered string so comparison still behaves deterministically.
		return strings.TrimSpace(lowered)
	}

	return strings.TrimSpace(folded)
}

// Equal reports whether two strings are equal after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
