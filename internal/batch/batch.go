// Package batch drives a full generation run: it samples sequence
// templates, generates sentence pairs, keeps only unique ones and
// accounts for the requested-vs-generated shortfall.
package batch

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/linglab/minpair/internal/generator"
	"github.com/linglab/minpair/internal/lexicon"
	"github.com/linglab/minpair/internal/logging"
)

// attemptMultiplier bounds the run at this many attempts per requested
// pair, so a template set with few unique combinations cannot loop
// forever.
const attemptMultiplier = 10

// Result is one fully generated sentence pair together with the
// templates that produced it.
type Result struct {
	Good    string
	Bad     string
	GoodSeq string
	BadSeq  string
}

// Summary describes one finished run.
type Summary struct {
	RunID     string
	Requested int
	Generated int
	Attempts  int
}

// Shortfall reports whether the run exhausted its attempt budget before
// reaching the requested count.
func (s Summary) Shortfall() bool {
	return s.Generated < s.Requested
}

// Runner owns the sequence templates and the generator for one run.
// Not safe for concurrent use: the generator's used-word state is
// mutated on every attempt.
type Runner struct {
	sequences []lexicon.SequencePair
	gen       *generator.Generator
	rng       *rand.Rand
}

// NewRunner creates a Runner over the given templates and generator.
func NewRunner(sequences []lexicon.SequencePair, gen *generator.Generator, rng *rand.Rand) *Runner {
	return &Runner{sequences: sequences, gen: gen, rng: rng}
}

// Run generates up to target unique sentence pairs. Recoverable
// per-pair failures (no matching verb pair) are swallowed and retried
// with a fresh template sample; any other generation error aborts the
// run. A shortfall is logged, not an error.
func (r *Runner) Run(target int) ([]Result, Summary, error) {
	sum := Summary{RunID: uuid.NewString(), Requested: target}
	results := make([]Result, 0, target)
	seen := make(map[[2]string]bool)

	maxAttempts := target * attemptMultiplier
	for sum.Generated < target && sum.Attempts < maxAttempts {
		sum.Attempts++

		seq := r.sequences[r.rng.Intn(len(r.sequences))]
		good, bad, err := r.gen.Pair(seq.Good, seq.Bad)
		if err != nil {
			if errors.Is(err, generator.ErrNoVerbPair) {
				logging.Debug("retrying", "reason", err, "run", sum.RunID)
				continue
			}
			return nil, sum, err
		}

		key := [2]string{good, bad}
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, Result{Good: good, Bad: bad, GoodSeq: seq.Good, BadSeq: seq.Bad})
		sum.Generated++
	}

	if sum.Shortfall() {
		logging.Warn("could not reach requested pair count",
			"generated", sum.Generated, "requested", sum.Requested,
			"attempts", sum.Attempts, "run", sum.RunID)
	}
	return results, sum, nil
}
