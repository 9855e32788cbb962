package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store interface defines the methods for run history persistence
type Store interface {
	Close() error
	SaveRun(run Run) error
	History(name string, limit int) ([]Run, error)
	Latest(name string) (*Run, error)
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		candidate_a TEXT NOT NULL,
		candidate_b TEXT NOT NULL,
		trials INTEGER NOT NULL,
		mean_a REAL NOT NULL,
		mean_b REAL NOT NULL,
		median_a REAL NOT NULL,
		median_b REAL NOT NULL,
		ops_a REAL NOT NULL,
		ops_b REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_name ON runs(name, created_at);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun saves a run summary
func (s *SQLiteStore) SaveRun(run Run) error {
	query := `INSERT INTO runs (name, created_at, candidate_a, candidate_b, trials,
		mean_a, mean_b, median_a, median_b, ops_a, ops_b)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := s.db.Exec(query, run.Name, created, run.CandidateA, run.CandidateB,
		run.Trials, run.MeanA, run.MeanB, run.MedianA, run.MedianB, run.OpsA, run.OpsB)
	return err
}

// History retrieves the most recent runs for a benchmark, newest first
func (s *SQLiteStore) History(name string, limit int) ([]Run, error) {
	query := `SELECT id, name, created_at, candidate_a, candidate_b, trials,
		mean_a, mean_b, median_a, median_b, ops_a, ops_b
		FROM runs WHERE name = ? ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := s.db.Query(query, name, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.CandidateA, &r.CandidateB,
			&r.Trials, &r.MeanA, &r.MeanB, &r.MedianA, &r.MedianB, &r.OpsA, &r.OpsB); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Latest returns the newest run for a benchmark, or nil when none is saved
func (s *SQLiteStore) Latest(name string) (*Run, error) {
	runs, err := s.History(name, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}
