package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linglab/minpair/internal/batch"
	"github.com/linglab/minpair/internal/config"
	"github.com/linglab/minpair/internal/generator"
	"github.com/linglab/minpair/internal/lexicon"
	"github.com/linglab/minpair/internal/selector"
	"github.com/linglab/minpair/internal/ui/review"
)

func runReview() {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	fs := flag.NewFlagSet("review", flag.ExitOnError)
	dbPath := fs.String("db", cfg.Data.DatabaseFile, "Pair database")
	live := fs.Bool("live", false, "Enable live generation (needs -lexicon and -sequences)")
	lexPath := fs.String("lexicon", cfg.Data.LexiconFile, "Lexicon CSV for live mode")
	seqPath := fs.String("sequences", cfg.Data.SequencesFile, "Sequence CSV for live mode")
	morphology := fs.String("morphology", cfg.Generation.Language, "Morphology for live mode")
	seed := fs.Int64("seed", 0, "RNG seed for live mode (0 = time-based)")
	fs.Parse(os.Args[1:])

	st := openDB(*dbPath)
	defer st.Close()

	limit := cfg.UI.ItemLimit
	if limit <= 0 {
		limit = 500
	}
	pairs, err := st.GetPairs(limit)
	if err != nil {
		fatal(err)
	}

	var source review.Source
	if *live {
		if *lexPath == "" || *seqPath == "" {
			fatal(fmt.Errorf("live mode requires -lexicon and -sequences"))
		}
		source = liveSource(*lexPath, *seqPath, *morphology, *seed)
	}

	p := tea.NewProgram(review.New(st, pairs, source), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal(err)
	}
}

// liveSource builds a generator-backed pair source. Each call samples a
// template and generates one pair, resampling on recoverable failures;
// uniqueness against the stored dataset rides on the store's UNIQUE
// constraint.
func liveSource(lexPath, seqPath, morphology string, seed int64) review.Source {
	lex, err := lexicon.Load(lexPath)
	if err != nil {
		fatal(err)
	}
	sequences, err := lexicon.LoadSequences(seqPath)
	if err != nil {
		fatal(err)
	}
	stem := loadStemmer(morphology)

	rng := newRNG(seed)
	gen := generator.New(lex, selector.NewState(), stem, rng)

	const sourceAttempts = 100
	return func() (batch.Result, error) {
		var lastErr error
		for i := 0; i < sourceAttempts; i++ {
			seq := sequences[rng.Intn(len(sequences))]
			good, bad, err := gen.Pair(seq.Good, seq.Bad)
			if errors.Is(err, generator.ErrNoVerbPair) {
				lastErr = err
				continue
			}
			if err != nil {
				return batch.Result{}, err
			}
			return batch.Result{Good: good, Bad: bad, GoodSeq: seq.Good, BadSeq: seq.Bad}, nil
		}
		return batch.Result{}, fmt.Errorf("live generation: %w", lastErr)
	}
}
