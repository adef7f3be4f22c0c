package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/linglab/minpair/internal/config"
)

func runStats() {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dbPath := fs.String("db", cfg.Data.DatabaseFile, "Pair database")
	fs.Parse(os.Args[1:])

	st := openDB(*dbPath)
	defer st.Close()

	total, err := st.CountPairs()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Total pairs:           %d\n", total)

	runs, err := st.Runs()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Runs:                  %d\n", len(runs))

	for _, r := range runs {
		note := ""
		if r.Generated < r.Requested {
			note = "  (shortfall)"
		}
		fmt.Printf("  %s  %s  %d/%d in %d attempts%s\n",
			r.Started.Format("2006-01-02 15:04"), r.Language,
			r.Generated, r.Requested, r.Attempts, note)
	}

	counts, err := st.SequenceCounts()
	if err != nil {
		fatal(err)
	}
	if len(counts) == 0 {
		return
	}

	fmt.Printf("\nTemplates (%d):\n", len(counts))
	for _, c := range counts {
		fmt.Printf("  %-45s %d\n", c.GoodSeq+" / "+c.BadSeq, c.Count)
	}
}
