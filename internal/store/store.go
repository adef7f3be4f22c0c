// Package store provides SQLite persistence for generated datasets.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Pair is one stored sentence pair.
type Pair struct {
	ID      int64
	RunID   string
	Good    string
	Bad     string
	GoodSeq string
	BadSeq  string
	Created time.Time
}

// Run records one generation run's accounting.
type Run struct {
	ID        string
	Language  string
	Requested int
	Generated int
	Attempts  int
	Started   time.Time
}

// SequenceCount is the number of stored pairs per sequence template.
type SequenceCount struct {
	GoodSeq string
	BadSeq  string
	Count   int
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	// Build connection string based on database type
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// For in-memory databases, limit to 1 connection to avoid issues
	// with multiple connections getting different databases
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Enable WAL mode for file-based databases (not :memory:)
	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		language TEXT NOT NULL,
		requested INTEGER NOT NULL,
		generated INTEGER NOT NULL,
		attempts INTEGER NOT NULL,
		started_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pairs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		good_sentence TEXT NOT NULL,
		bad_sentence TEXT NOT NULL,
		good_sequence TEXT NOT NULL,
		bad_sequence TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE(good_sentence, bad_sentence)
	);

	CREATE INDEX IF NOT EXISTS idx_pairs_run ON pairs(run_id);
	CREATE INDEX IF NOT EXISTS idx_pairs_sequence ON pairs(good_sequence);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveRun records one run's accounting.
// Thread-safe: acquires write lock.
func (s *Store) SaveRun(run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO runs (id, language, requested, generated, attempts, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Language, run.Requested, run.Generated, run.Attempts, run.Started)
	return err
}

// SavePairs stores pairs, returning count of new pairs inserted.
// Duplicates (by sentence pair) are silently ignored via INSERT OR IGNORE,
// matching the uniqueness the run loop enforces in memory.
// Thread-safe: acquires write lock.
func (s *Store) SavePairs(pairs []Pair) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(pairs) == 0 {
		return 0, nil
	}

	stmt, err := s.db.Prepare(`
		INSERT OR IGNORE INTO pairs (
			run_id, good_sentence, bad_sentence, good_sequence, bad_sequence, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	newCount := 0
	for _, p := range pairs {
		created := p.Created
		if created.IsZero() {
			created = time.Now()
		}
		result, err := stmt.Exec(p.RunID, p.Good, p.Bad, p.GoodSeq, p.BadSeq, created)
		if err != nil {
			return newCount, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return newCount, err
		}
		if affected > 0 {
			newCount++
		}
	}

	return newCount, nil
}

// GetPairs retrieves stored pairs, newest first.
// Thread-safe: acquires read lock.
func (s *Store) GetPairs(limit int) ([]Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, run_id, good_sentence, bad_sentence, good_sequence, bad_sequence, created_at
		FROM pairs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	return s.queryPairs(query, limit)
}

// GetPairsByRun retrieves the pairs stored for one run.
// Thread-safe: acquires read lock.
func (s *Store) GetPairsByRun(runID string) ([]Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, run_id, good_sentence, bad_sentence, good_sequence, bad_sequence, created_at
		FROM pairs
		WHERE run_id = ?
		ORDER BY id
	`
	return s.queryPairs(query, runID)
}

// CountPairs returns the total number of stored pairs.
// Thread-safe: acquires read lock.
func (s *Store) CountPairs() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM pairs").Scan(&n)
	return n, err
}

// Runs returns all recorded runs, newest first.
// Thread-safe: acquires read lock.
func (s *Store) Runs() ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, language, requested, generated, attempts, started_at
		FROM runs
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Language, &r.Requested, &r.Generated, &r.Attempts, &r.Started); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SequenceCounts returns stored-pair counts per sequence template,
// highest first.
// Thread-safe: acquires read lock.
func (s *Store) SequenceCounts() ([]SequenceCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT good_sequence, bad_sequence, COUNT(*) AS n
		FROM pairs
		GROUP BY good_sequence, bad_sequence
		ORDER BY n DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []SequenceCount
	for rows.Next() {
		var c SequenceCount
		if err := rows.Scan(&c.GoodSeq, &c.BadSeq, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// queryPairs is a helper that executes a query and scans results into Pairs.
// Caller must hold s.mu (read lock is sufficient).
func (s *Store) queryPairs(query string, args ...any) ([]Pair, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []Pair
	for rows.Next() {
		var p Pair
		if err := rows.Scan(&p.ID, &p.RunID, &p.Good, &p.Bad, &p.GoodSeq, &p.BadSeq, &p.Created); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}
