// Package tag normalizes part-of-speech tags and extracts link markers.
//
// A tag is a token like "NOUN" or "VERB₁". The optional trailing
// subscript digit is a link marker: it ties a position in a good
// sequence to the matching position in its bad counterpart so that
// agreement phenomena spread over several positions stay coherent.
// Stripping the marker yields the base tag, which is the lexicon key.
package tag

import "strings"

// linkMarkers is the fixed set of recognized link marker characters.
// At most one may appear in a tag, and only at the end.
var linkMarkers = []rune{'₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

// Base returns the lexicon lookup key for a tag: uppercased, with any
// trailing link marker removed. Absence of a marker is the normal case.
func Base(t string) string {
	base, _ := split(t)
	return strings.ToUpper(base)
}

// Marker returns the link marker at the end of the tag, if present.
func Marker(t string) (string, bool) {
	_, marker := split(t)
	return marker, marker != ""
}

// IsVerb reports whether the tag's base form carries the VERB category.
// Detection is deliberately a substring match: sequence files use
// compound tags like "VERB_SING" and "AUX_VERB_PL".
func IsVerb(t string) bool {
	return strings.Contains(Base(t), "VERB")
}

// split separates a tag into its base form and trailing marker.
func split(t string) (base, marker string) {
	runes := []rune(t)
	if len(runes) == 0 {
		return t, ""
	}
	last := runes[len(runes)-1]
	for _, m := range linkMarkers {
		if last == m {
			return string(runes[:len(runes)-1]), string(m)
		}
	}
	return t, ""
}
