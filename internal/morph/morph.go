// Package morph derives verb roots by suffix stripping.
//
// Root extraction is a heuristic, and a language-specific one: the
// built-in table covers Italian present-tense endings. Other languages
// supply their own ordered suffix table, either programmatically or
// from a YAML file, without touching the matching logic that consumes
// the Stemmer interface.
package morph

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stemmer reduces an inflected verb form to its invariant root.
type Stemmer interface {
	Root(word string) string
}

// SuffixStemmer strips the first matching suffix from an ordered table.
// Suffixes are checked in table order, so longer patterns must come
// before their single-character tails (e.g. "ano" before "a"). A word
// matching no suffix is its own root.
type SuffixStemmer struct {
	Name     string   `yaml:"name"`
	Suffixes []string `yaml:"suffixes"`
}

// Root returns the word with the first matching suffix removed.
func (s *SuffixStemmer) Root(word string) string {
	for _, suf := range s.Suffixes {
		if len(word) > len(suf) && strings.HasSuffix(word, suf) {
			return word[:len(word)-len(suf)]
		}
	}
	return word
}

// builtins holds the shipped suffix tables, keyed by language name.
var builtins = map[string]*SuffixStemmer{
	"italian": {
		Name: "italian",
		// -ano/-ono: 3rd person plural; -a/-e: 3rd person singular of
		// the -are and -ere/-ire families.
		Suffixes: []string{"ano", "ono", "a", "e"},
	},
}

// Italian returns the built-in Italian suffix table.
func Italian() *SuffixStemmer {
	return builtins["italian"]
}

// Builtin looks up a shipped suffix table by language name.
func Builtin(name string) (*SuffixStemmer, bool) {
	s, ok := builtins[strings.ToLower(name)]
	return s, ok
}

// Names returns the built-in language names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile reads a suffix table from a YAML file:
//
//	name: italian
//	suffixes: [ano, ono, a, e]
func LoadFile(path string) (*SuffixStemmer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read morphology file: %w", err)
	}

	var s SuffixStemmer
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse morphology file %s: %w", path, err)
	}
	if len(s.Suffixes) == 0 {
		return nil, fmt.Errorf("morphology file %s: no suffixes defined", path)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	return &s, nil
}
