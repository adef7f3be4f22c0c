// Command minpair generates minimal-pair sentence datasets from a
// tagged lexicon and part-of-speech tag-sequence templates.
//
// Usage:
//
//	minpair                  Show help
//	minpair generate         Generate sentence pairs from CSV inputs
//	minpair stats            Dataset statistics
//	minpair review           Browse stored pairs in a terminal UI
//	minpair langs            List built-in morphology tables
package main

import (
	"fmt"
	"os"

	"github.com/linglab/minpair/internal/logging"
)

const usage = `minpair — minimal-pair sentence dataset generator

Usage:
  minpair <command> [flags]

Commands:
  generate    Generate sentence pairs from a lexicon and sequence CSV
  stats       Dataset statistics (runs, per-template counts)
  review      Browse stored pairs in a terminal UI (optional live mode)
  langs       List built-in morphology tables

Run 'minpair <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "minpair: %v\n", err)
	}
	defer logging.Close()

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "generate":
		runGenerate()
	case "stats":
		runStats()
	case "review":
		runReview()
	case "langs":
		runLangs()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "minpair: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
