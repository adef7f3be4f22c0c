package store

import (
	"fmt"
	"testing"
	"time"
)

func TestOpen(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	// Verify tables exist by querying them
	for _, table := range []string{"pairs", "runs"} {
		var name string
		err = st.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Fatalf("%s table not created: %v", table, err)
		}
	}
}

func testPairs(runID string, n int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{
			RunID:   runID,
			Good:    fmt.Sprintf("il gatto corre %d", i),
			Bad:     fmt.Sprintf("il gatto corrono %d", i),
			GoodSeq: "DET NOUN VERB_SING₁",
			BadSeq:  "DET NOUN VERB_PL₁",
			Created: time.Now(),
		}
	}
	return pairs
}

func TestSavePairs(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	count, err := st.SavePairs(testPairs("run-1", 2))
	if err != nil {
		t.Fatalf("SavePairs failed: %v", err)
	}
	if count != 2 {
		t.Errorf("inserted %d pairs, want 2", count)
	}

	// Re-saving the same sentences inserts nothing.
	count, err = st.SavePairs(testPairs("run-2", 2))
	if err != nil {
		t.Fatalf("SavePairs failed: %v", err)
	}
	if count != 0 {
		t.Errorf("duplicate save inserted %d pairs, want 0", count)
	}

	total, err := st.CountPairs()
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("CountPairs = %d, want 2", total)
	}
}

func TestGetPairs(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	if _, err := st.SavePairs(testPairs("run-1", 5)); err != nil {
		t.Fatal(err)
	}

	pairs, err := st.GetPairs(3)
	if err != nil {
		t.Fatalf("GetPairs failed: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	for _, p := range pairs {
		if p.ID == 0 || p.RunID != "run-1" || p.GoodSeq == "" {
			t.Errorf("pair not fully scanned: %+v", p)
		}
	}

	byRun, err := st.GetPairsByRun("run-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(byRun) != 5 {
		t.Errorf("GetPairsByRun returned %d pairs, want 5", len(byRun))
	}
	if none, _ := st.GetPairsByRun("nope"); len(none) != 0 {
		t.Errorf("unexpected pairs for unknown run: %v", none)
	}
}

func TestRuns(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	run := Run{
		ID:        "run-1",
		Language:  "italian",
		Requested: 120,
		Generated: 97,
		Attempts:  1200,
		Started:   time.Now(),
	}
	if err := st.SaveRun(run); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := st.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.Language != "italian" || got.Requested != 120 ||
		got.Generated != 97 || got.Attempts != 1200 {
		t.Errorf("run round trip: %+v", got)
	}
}

func TestSequenceCounts(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	pairs := testPairs("run-1", 3)
	pairs = append(pairs, Pair{
		RunID:   "run-1",
		Good:    "gatti corrono",
		Bad:     "gatti corre",
		GoodSeq: "NOUN VERB_PL₁",
		BadSeq:  "NOUN VERB_SING₁",
		Created: time.Now(),
	})
	if _, err := st.SavePairs(pairs); err != nil {
		t.Fatal(err)
	}

	counts, err := st.SequenceCounts()
	if err != nil {
		t.Fatalf("SequenceCounts failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("got %d templates, want 2", len(counts))
	}
	if counts[0].GoodSeq != "DET NOUN VERB_SING₁" || counts[0].Count != 3 {
		t.Errorf("top template: %+v", counts[0])
	}
	if counts[1].Count != 1 {
		t.Errorf("second template: %+v", counts[1])
	}
}
