package match

import (
	"regexp"
	"strings"
)

// Normalization pipeline for hotel names. The output key is what both the
// exact-name index and the fuzzy scorer operate on, so two human-readable
// names that differ only by business-type suffixes, "and"/"&", pluralization,
// or case/punctuation reduce to the same key.
//
// The pipeline is deterministic, idempotent and allocation-light; it must
// stay pure (no I/O) because it runs inside fuzzy sweeps over the whole
// canonical dataset.

var (
	bnbRe = regexp.MustCompile(`\b(?:bed\s+(?:and|&)\s+breakfast|b&b)\b`)

	// Business-type words stripped as whole words. Plural forms are listed
	// explicitly so "Grand Hotels" and "grand hotel" converge.
	suffixRe = regexp.MustCompile(`\b(?:hotels?|inns?|resorts?|lodges?|guest\s*houses?|hostels?|motels?|restaurants?|restos?|cafes?|bars?|suites?|apartments?|apts?|condos?|condominiums?|villas?|villages?|bnbs?)\b`)

	andRe      = regexp.MustCompile(`\band\b`)
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9 ]+`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizeLight only lowercases, strips punctuation and collapses
// whitespace. Fuzzy scoring runs on both forms: suffix stripping is
// asymmetric when the input misspells a business-type word ("Htel"), and the
// light form keeps such pairs comparable.
func NormalizeLight(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = nonAlnumRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Normalize maps a raw hotel name to its normalized key.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	s = bnbRe.ReplaceAllString(s, "bnb")
	s = suffixRe.ReplaceAllString(s, " ")
	s = andRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&", " ")

	s = nonAlnumRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	// Naive singularization, one trailing "s" per word. Words ending in
	// "ss" are left alone, which also keeps the pipeline idempotent.
	words := strings.Split(s, " ")
	for i, w := range words {
		if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
			words[i] = w[:len(w)-1]
		}
	}
	s = strings.Join(words, " ")

	return strings.TrimPrefix(s, "the ")
}
