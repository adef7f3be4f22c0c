package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/linglab/minpair/internal/logging"
	"github.com/linglab/minpair/internal/morph"
	"github.com/linglab/minpair/internal/store"
)

// fatal logs and prints a load-time error, then aborts the command.
func fatal(err error) {
	logging.Error("fatal", "error", err)
	fmt.Fprintf(os.Stderr, "minpair: %v\n", err)
	os.Exit(1)
}

// openDB opens (creating if needed) the pair database.
func openDB(path string) *store.Store {
	st, err := store.Open(path)
	if err != nil {
		fatal(fmt.Errorf("open database %s: %w", path, err))
	}
	return st
}

// loadStemmer resolves a morphology argument: a built-in language name,
// or a path to a YAML suffix table.
func loadStemmer(name string) *morph.SuffixStemmer {
	if s, ok := morph.Builtin(name); ok {
		return s
	}
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		s, err := morph.LoadFile(name)
		if err != nil {
			fatal(err)
		}
		return s
	}
	fatal(fmt.Errorf("unknown morphology %q (built-ins: %s)", name, strings.Join(morph.Names(), ", ")))
	return nil
}

// newRNG seeds a generator source; 0 means time-based.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
