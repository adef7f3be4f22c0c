package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/linglab/minpair/internal/batch"
	"github.com/linglab/minpair/internal/config"
	"github.com/linglab/minpair/internal/generator"
	"github.com/linglab/minpair/internal/lexicon"
	"github.com/linglab/minpair/internal/logging"
	"github.com/linglab/minpair/internal/selector"
	"github.com/linglab/minpair/internal/store"
)

func runGenerate() {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	lexPath := fs.String("lexicon", cfg.Data.LexiconFile, "Lexicon CSV (Word,Tag columns)")
	seqPath := fs.String("sequences", cfg.Data.SequencesFile, "Sequence CSV (Good_Sequence,Bad_Sequence columns)")
	target := fs.Int("n", cfg.Generation.TargetPairs, "Number of unique pairs to generate")
	dbPath := fs.String("db", "", "Persist pairs to this SQLite database (optional)")
	morphology := fs.String("morphology", cfg.Generation.Language, "Built-in language name or YAML suffix table")
	seed := fs.Int64("seed", 0, "RNG seed (0 = time-based)")
	quiet := fs.Bool("quiet", false, "Suppress pair printing")
	fs.Parse(os.Args[1:])

	if *lexPath == "" || *seqPath == "" {
		fatal(fmt.Errorf("generate requires -lexicon and -sequences (or config defaults)"))
	}

	lex, err := lexicon.Load(*lexPath)
	if err != nil {
		fatal(err)
	}
	sequences, err := lexicon.LoadSequences(*seqPath)
	if err != nil {
		fatal(err)
	}
	stem := loadStemmer(*morphology)

	logging.Info("generation starting",
		"lexicon", *lexPath, "tags", len(lex),
		"sequences", len(sequences), "target", *target, "morphology", stem.Name)

	rng := newRNG(*seed)
	gen := generator.New(lex, selector.NewState(), stem, rng)
	runner := batch.NewRunner(sequences, gen, rng)

	started := time.Now()
	results, sum, err := runner.Run(*target)
	if err != nil {
		fatal(err)
	}

	if !*quiet {
		fmt.Println("\nGenerated Sentence Pairs:")
		for i, r := range results {
			fmt.Printf("\nPair %d:\n", i+1)
			fmt.Printf("Good: %s\n", r.Good)
			fmt.Printf("Bad:  %s\n", r.Bad)
			fmt.Printf("Good Sequence: %s\n", r.GoodSeq)
			fmt.Printf("Bad Sequence:  %s\n", r.BadSeq)
		}
	}

	if sum.Shortfall() {
		fmt.Fprintf(os.Stderr, "\nminpair: only %d of %d requested unique pairs after %d attempts\n",
			sum.Generated, sum.Requested, sum.Attempts)
	} else {
		fmt.Printf("\n%d pairs generated in %d attempts\n", sum.Generated, sum.Attempts)
	}

	if *dbPath == "" {
		return
	}

	st := openDB(*dbPath)
	defer st.Close()

	pairs := make([]store.Pair, len(results))
	for i, r := range results {
		pairs[i] = store.Pair{
			RunID:   sum.RunID,
			Good:    r.Good,
			Bad:     r.Bad,
			GoodSeq: r.GoodSeq,
			BadSeq:  r.BadSeq,
			Created: time.Now(),
		}
	}
	saved, err := st.SavePairs(pairs)
	if err != nil {
		fatal(fmt.Errorf("save pairs: %w", err))
	}
	if err := st.SaveRun(store.Run{
		ID:        sum.RunID,
		Language:  stem.Name,
		Requested: sum.Requested,
		Generated: sum.Generated,
		Attempts:  sum.Attempts,
		Started:   started,
	}); err != nil {
		fatal(fmt.Errorf("save run: %w", err))
	}

	fmt.Printf("%d new pairs saved to %s (run %s)\n", saved, *dbPath, sum.RunID)
}
