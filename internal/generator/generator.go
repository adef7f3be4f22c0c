// Package generator turns one aligned (good, bad) tag-sequence pair
// into one (good, bad) sentence pair.
//
// Positions where both sides carry a VERB tag with the same link
// marker form a verb link group: every position in the group receives
// the same verb form within each sentence, and the two sentences'
// forms share a morphological root. All other positions are filled
// independently through the word selector, except that identical tags
// on both sides reuse the good sentence's word.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/linglab/minpair/internal/lexicon"
	"github.com/linglab/minpair/internal/logging"
	"github.com/linglab/minpair/internal/morph"
	"github.com/linglab/minpair/internal/selector"
	"github.com/linglab/minpair/internal/tag"
)

// ErrNoVerbPair signals that no root-matching singular/plural verb pair
// was found within the attempt budget. Recoverable: the caller should
// discard the attempt and resample a different sequence pair.
var ErrNoVerbPair = errors.New("no matching verb pair")

// verbPairAttempts bounds the search for a root-matching verb pair.
// Each attempt reshuffles the candidates, so attempts are independent.
const verbPairAttempts = 50

// missingFiller replaces any position left unfilled. With the verb
// search either succeeding or failing the whole call, it should never
// appear in output.
const missingFiller = "[MISSING]"

// Generator fills tag sequences with words from a lexicon.
type Generator struct {
	lex  lexicon.Lexicon
	sel  *selector.Selector
	stem morph.Stemmer
	rng  *rand.Rand
}

// New creates a Generator. The selector state carries used-word
// bookkeeping across calls; the stemmer supplies the language's verb
// morphology.
func New(lex lexicon.Lexicon, state *selector.State, stem morph.Stemmer, rng *rand.Rand) *Generator {
	return &Generator{
		lex:  lex,
		sel:  selector.New(lex, state, rng),
		stem: stem,
		rng:  rng,
	}
}

// verbGroup is one verb link group: the positions sharing a marker plus
// the representative tag pair from the group's first position.
type verbGroup struct {
	positions []int
	goodTag   string
	badTag    string
}

// Pair generates one (good, bad) sentence pair from aligned
// whitespace-separated tag sequences.
func (g *Generator) Pair(goodSeq, badSeq string) (good, bad string, err error) {
	goodTags := strings.Fields(goodSeq)
	badTags := strings.Fields(badSeq)
	if len(goodTags) != len(badTags) {
		return "", "", fmt.Errorf("sequence length mismatch: %d vs %d tags", len(goodTags), len(badTags))
	}

	// Classify positions into verb link groups, keyed by marker.
	groups := make(map[string]*verbGroup)
	var order []string
	grouped := make(map[int]bool)
	for i := range goodTags {
		gt, bt := goodTags[i], badTags[i]
		if !tag.IsVerb(gt) || !tag.IsVerb(bt) {
			continue
		}
		gm, gok := tag.Marker(gt)
		bm, bok := tag.Marker(bt)
		if !gok || !bok || gm != bm {
			continue
		}
		grp, ok := groups[gm]
		if !ok {
			grp = &verbGroup{goodTag: gt, badTag: bt}
			groups[gm] = grp
			order = append(order, gm)
		}
		grp.positions = append(grp.positions, i)
		grouped[i] = true
	}

	goodWords := make([]string, len(goodTags))
	badWords := make([]string, len(badTags))
	pairUsed := make(map[string]bool)

	// Ordinary good positions first, then ordinary bad positions;
	// where the tags agree the bad sentence reuses the good word.
	for i, t := range goodTags {
		if grouped[i] {
			continue
		}
		w, err := g.sel.Pick(t, pairUsed)
		if err != nil {
			return "", "", err
		}
		goodWords[i] = w
	}
	for i, t := range badTags {
		if grouped[i] {
			continue
		}
		if goodTags[i] == t {
			badWords[i] = goodWords[i]
			continue
		}
		w, err := g.sel.Pick(t, pairUsed)
		if err != nil {
			return "", "", err
		}
		badWords[i] = w
	}

	// Each group gets one coherent singular/plural pair spread over all
	// of its positions.
	for _, marker := range order {
		grp := groups[marker]

		found := false
		for attempt := 0; attempt < verbPairAttempts; attempt++ {
			s, p, ok := g.matchingVerbPair(grp.goodTag, grp.badTag)
			if !ok {
				continue
			}
			for _, pos := range grp.positions {
				goodWords[pos] = s
				badWords[pos] = p
			}
			found = true
			break
		}
		if !found {
			logging.Debug("verb pair search exhausted",
				"good", grp.goodTag, "bad", grp.badTag, "attempts", verbPairAttempts)
			return "", "", fmt.Errorf("tags %s/%s after %d attempts: %w",
				grp.goodTag, grp.badTag, verbPairAttempts, ErrNoVerbPair)
		}
	}

	for i := range goodWords {
		if goodWords[i] == "" {
			goodWords[i] = missingFiller
		}
		if badWords[i] == "" {
			badWords[i] = missingFiller
		}
	}

	return strings.Join(goodWords, " "), strings.Join(badWords, " "), nil
}
