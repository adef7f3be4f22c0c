// Package selector picks words for tags while maximizing lexical
// variety: within one sentence pair no word repeats across ordinary
// positions, and across a whole run a word is not reused for a tag
// until every other word for that tag has had its turn.
package selector

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/linglab/minpair/internal/lexicon"
	"github.com/linglab/minpair/internal/logging"
	"github.com/linglab/minpair/internal/tag"
)

// ErrEmptyEntry is returned when a tag exists in the lexicon but has no
// words at all, which is a data configuration error.
var ErrEmptyEntry = errors.New("lexicon entry is empty")

// State tracks words already emitted per base tag over the lifetime of
// one generation run. It is owned by the batch runner and handed to
// each Selector explicitly; there is no ambient process-wide state, so
// parallel runs can each own an independent State.
type State struct {
	used map[string]map[string]bool
}

// NewState returns an empty run-lifetime used-word record.
func NewState() *State {
	return &State{used: make(map[string]map[string]bool)}
}

// usedFor returns the used-word set for a base tag, creating it lazily.
func (s *State) usedFor(baseTag string) map[string]bool {
	set, ok := s.used[baseTag]
	if !ok {
		set = make(map[string]bool)
		s.used[baseTag] = set
	}
	return set
}

// reset forgets the used words for one base tag. Called when every word
// for the tag has cycled through once.
func (s *State) reset(baseTag string) {
	s.used[baseTag] = make(map[string]bool)
}

// UnknownPlaceholder is the inline token emitted for a tag that has no
// lexicon entry. Generation continues; the condition is reportable, not
// fatal.
func UnknownPlaceholder(t string) string {
	return fmt.Sprintf("[Unknown tag: '%s']", t)
}

// Selector chooses words from the lexicon for one generation run.
type Selector struct {
	lex   lexicon.Lexicon
	state *State
	rng   *rand.Rand
}

// New creates a Selector over the given lexicon and run state.
func New(lex lexicon.Lexicon, state *State, rng *rand.Rand) *Selector {
	return &Selector{lex: lex, state: state, rng: rng}
}

// Tiers of the candidate-resolution fallback chain, best first.
type tier int

const (
	// tierFresh: words unused both in this pair and in the whole run.
	tierFresh tier = iota
	// tierCycled: the run-lifetime set covered the entire entry, so it
	// is due for a reset; only the per-pair exclusion applies.
	tierCycled
	// tierAny: the per-pair exclusion alone already exhausts the entry;
	// fall back to the unfiltered list.
	tierAny
)

// resolve computes the candidate pool for an entry given the current
// exclusion snapshots. Pure: callers apply the reset that tierCycled
// implies.
func resolve(entry []string, pairUsed, runUsed map[string]bool) ([]string, tier) {
	var pool []string
	for _, w := range entry {
		if !pairUsed[w] && !runUsed[w] {
			pool = append(pool, w)
		}
	}
	if len(pool) > 0 {
		return pool, tierFresh
	}

	for _, w := range entry {
		if !pairUsed[w] {
			pool = append(pool, w)
		}
	}
	if len(pool) > 0 {
		return pool, tierCycled
	}

	return entry, tierAny
}

// Pick selects a word for the tag, excluding words in pairUsed where
// possible. The chosen word is recorded in both pairUsed and the run
// state. A tag absent from the lexicon yields a placeholder token and a
// warning, not an error.
func (s *Selector) Pick(rawTag string, pairUsed map[string]bool) (string, error) {
	baseTag := tag.Base(rawTag)

	entry := s.lex.Words(baseTag)
	if entry == nil {
		logging.Warn("tag not found in lexicon", "base", baseTag, "tag", rawTag)
		return UnknownPlaceholder(rawTag), nil
	}
	if len(entry) == 0 {
		return "", fmt.Errorf("tag %q: %w", baseTag, ErrEmptyEntry)
	}

	pool, level := resolve(entry, pairUsed, s.state.usedFor(baseTag))
	if level == tierCycled {
		s.state.reset(baseTag)
	}

	word := pool[s.rng.Intn(len(pool))]
	pairUsed[word] = true
	s.state.usedFor(baseTag)[word] = true
	return word, nil
}
