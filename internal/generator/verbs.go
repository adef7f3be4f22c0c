package generator

import (
	"github.com/linglab/minpair/internal/tag"
)

// matchingVerbPair looks for a singular/plural verb pair sharing a
// morphological root, one form drawn from each tag's lexicon bucket.
// The singular candidates are shuffled so repeated calls explore the
// bucket in a different order; among the plurals matching a root, one
// is chosen uniformly. Returns ok=false when either bucket is empty or
// no root lines up. Retry policy belongs to the caller.
func (g *Generator) matchingVerbPair(singularTag, badTag string) (singular, plural string, ok bool) {
	singulars := g.lex.Words(tag.Base(singularTag))
	plurals := g.lex.Words(tag.Base(badTag))
	if len(singulars) == 0 || len(plurals) == 0 {
		return "", "", false
	}

	shuffled := make([]string, len(singulars))
	copy(shuffled, singulars)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, s := range shuffled {
		root := g.stem.Root(s)

		var matches []string
		for _, p := range plurals {
			if g.stem.Root(p) == root {
				matches = append(matches, p)
			}
		}
		if len(matches) > 0 {
			return s, matches[g.rng.Intn(len(matches))], true
		}
	}

	return "", "", false
}
