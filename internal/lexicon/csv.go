package lexicon

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column names expected in the input files.
const (
	colWord = "Word"
	colTag  = "Tag"
	colGood = "Good_Sequence"
	colBad  = "Bad_Sequence"
)

// Load reads a lexicon CSV with Word and Tag columns. Rows with an
// empty word or tag are skipped; a file yielding no entries is a fatal
// configuration error.
func Load(path string) (Lexicon, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	wordIdx, ok := header[colWord]
	if !ok {
		return nil, fmt.Errorf("lexicon %s: missing %q column", path, colWord)
	}
	tagIdx, ok := header[colTag]
	if !ok {
		return nil, fmt.Errorf("lexicon %s: missing %q column", path, colTag)
	}

	lex := Lexicon{}
	for _, row := range rows {
		word := strings.TrimSpace(row[wordIdx])
		t := strings.TrimSpace(row[tagIdx])
		if word == "" || t == "" {
			continue
		}
		lex.Add(word, t)
	}

	if len(lex) == 0 {
		return nil, fmt.Errorf("lexicon %s: no valid entries", path)
	}
	return lex, nil
}

// LoadSequences reads a sequence CSV with Good_Sequence and
// Bad_Sequence columns. Rows where either cell is empty are skipped.
// A row whose two sequences differ in token count is rejected outright:
// positions are consumed pairwise, and silently truncating to the
// shorter side would corrupt the dataset.
func LoadSequences(path string) ([]SequencePair, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	goodIdx, ok := header[colGood]
	if !ok {
		return nil, fmt.Errorf("sequences %s: missing %q column", path, colGood)
	}
	badIdx, ok := header[colBad]
	if !ok {
		return nil, fmt.Errorf("sequences %s: missing %q column", path, colBad)
	}

	var pairs []SequencePair
	for i, row := range rows {
		good := strings.TrimSpace(row[goodIdx])
		bad := strings.TrimSpace(row[badIdx])
		if good == "" || bad == "" {
			continue
		}
		p := SequencePair{Good: good, Bad: bad}
		if len(p.GoodTags()) != len(p.BadTags()) {
			return nil, fmt.Errorf("sequences %s: row %d: good and bad sequences differ in length", path, i+2)
		}
		pairs = append(pairs, p)
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("sequences %s: no valid sequence pairs", path)
	}
	return pairs, nil
}

// readCSV returns all data rows plus a column-name index built from the
// header row. Ragged rows are tolerated (csv.Reader is set lenient)
// because hand-edited linguistic data rarely survives strict parsing.
func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: file is empty", path)
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}

	// Drop rows shorter than the header so column lookups stay in range.
	width := 0
	for _, idx := range header {
		if idx+1 > width {
			width = idx + 1
		}
	}
	var rows [][]string
	for _, rec := range records[1:] {
		if len(rec) >= width {
			rows = append(rows, rec)
		}
	}
	return rows, header, nil
}
