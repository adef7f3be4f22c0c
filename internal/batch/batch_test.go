package batch

import (
	"math/rand"
	"testing"

	"github.com/linglab/minpair/internal/generator"
	"github.com/linglab/minpair/internal/lexicon"
	"github.com/linglab/minpair/internal/morph"
	"github.com/linglab/minpair/internal/selector"
)

func newRunner(lex lexicon.Lexicon, sequences []lexicon.SequencePair, seed int64) *Runner {
	rng := rand.New(rand.NewSource(seed))
	gen := generator.New(lex, selector.NewState(), morph.Italian(), rng)
	return NewRunner(sequences, gen, rng)
}

// richLexicon has enough combinations for 120 unique pairs.
func richLexicon() lexicon.Lexicon {
	lex := lexicon.Lexicon{
		"VERB_SING": {"corre", "dorme", "parla", "salta", "vola"},
		"VERB_PL":   {"corrono", "dormono", "parlano", "saltano", "volano"},
	}
	nouns := []string{
		"gatto", "cane", "topo", "lupo", "orso", "leone", "pesce", "corvo",
		"cervo", "riccio", "tasso", "gufo", "merlo", "ragno", "rospo", "bruco",
	}
	for _, n := range nouns {
		lex.Add(n, "NOUN")
	}
	lex.Add("il", "DET")
	lex.Add("lo", "DET")
	lex.Add("un", "DET")
	return lex
}

func TestRunReachesTarget(t *testing.T) {
	sequences := []lexicon.SequencePair{
		{Good: "DET NOUN VERB_SING₁", Bad: "DET NOUN VERB_PL₁"},
		{Good: "NOUN VERB_SING₁ NOUN", Bad: "NOUN VERB_PL₁ NOUN"},
	}
	r := newRunner(richLexicon(), sequences, 1)

	results, sum, err := r.Run(120)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 120 || sum.Generated != 120 {
		t.Fatalf("generated %d pairs, want 120", len(results))
	}
	if sum.Shortfall() {
		t.Error("unexpected shortfall")
	}
	if sum.RunID == "" {
		t.Error("missing run ID")
	}

	seen := make(map[[2]string]bool)
	for _, res := range results {
		key := [2]string{res.Good, res.Bad}
		if seen[key] {
			t.Fatalf("duplicate pair emitted: %q / %q", res.Good, res.Bad)
		}
		seen[key] = true
		if res.GoodSeq == "" || res.BadSeq == "" {
			t.Error("result missing its source sequences")
		}
	}
}

// Requesting more pairs than combinatorially exist ends in a shortfall
// with no duplicates, not a hang.
func TestRunShortfall(t *testing.T) {
	lex := lexicon.Lexicon{
		"NOUN":      {"gatto"},
		"VERB_SING": {"corre"},
		"VERB_PL":   {"corrono"},
	}
	sequences := []lexicon.SequencePair{
		{Good: "NOUN VERB_SING₁", Bad: "NOUN VERB_PL₁"},
	}
	r := newRunner(lex, sequences, 2)

	results, sum, err := r.Run(10)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d unique pairs, want 1", len(results))
	}
	if !sum.Shortfall() {
		t.Error("expected shortfall")
	}
	if sum.Attempts != 100 {
		t.Errorf("attempts = %d, want the full 10x budget", sum.Attempts)
	}
}

// Verb-pair exhaustion on one template is retried, and templates that
// do work still produce output.
func TestRunRecoversFromVerbExhaustion(t *testing.T) {
	lex := lexicon.Lexicon{
		"NOUN":      {"gatto", "cane", "topo"},
		"VERB_SING": {"corre"},
		"VERB_PL":   {"dormono"}, // never root-matches corre
		"VERB_OK_S": {"parla"},
		"VERB_OK_P": {"parlano"},
	}
	sequences := []lexicon.SequencePair{
		{Good: "NOUN VERB_SING₁", Bad: "NOUN VERB_PL₁"},
		{Good: "NOUN VERB_OK_S₁", Bad: "NOUN VERB_OK_P₁"},
	}
	r := newRunner(lex, sequences, 3)

	results, _, err := r.Run(3)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected pairs from the workable template")
	}
	for _, res := range results {
		if res.GoodSeq != "NOUN VERB_OK_S₁" {
			t.Errorf("pair from the unworkable template: %+v", res)
		}
	}
}
