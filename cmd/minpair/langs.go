package main

import (
	"fmt"

	"github.com/linglab/minpair/internal/morph"
)

func runLangs() {
	fmt.Println("Built-in morphology tables:")
	for _, name := range morph.Names() {
		s, _ := morph.Builtin(name)
		fmt.Printf("  %-12s suffixes: %v\n", name, s.Suffixes)
	}
	fmt.Println("\nCustom tables load from YAML: minpair generate -morphology table.yaml")
}
