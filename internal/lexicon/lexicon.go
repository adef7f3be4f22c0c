// Package lexicon loads the tagged word list and the tag-sequence
// templates that drive generation.
package lexicon

import (
	"strings"

	"github.com/linglab/minpair/internal/tag"
)

// Lexicon maps a base tag to its candidate words. Duplicates are
// allowed and order carries no meaning; selection happens elsewhere.
// The index is built once and never mutated during a run.
type Lexicon map[string][]string

// Add appends a word under the tag's base form.
func (l Lexicon) Add(word, t string) {
	base := tag.Base(t)
	l[base] = append(l[base], word)
}

// Words returns the candidate list for a base tag, nil if unknown.
func (l Lexicon) Words(baseTag string) []string {
	return l[baseTag]
}

// SequencePair is one aligned (good, bad) tag-sequence template.
type SequencePair struct {
	Good string
	Bad  string
}

// GoodTags splits the good sequence into tag tokens.
func (p SequencePair) GoodTags() []string {
	return strings.Fields(p.Good)
}

// BadTags splits the bad sequence into tag tokens.
func (p SequencePair) BadTags() []string {
	return strings.Fields(p.Bad)
}
