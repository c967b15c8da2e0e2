// Package storage provides SQLite-based persistence for the high score and
// the history of finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// HighScoreKey is the settings key holding the infinite-mode high score.
const HighScoreKey = "cannonBlastHS"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished campaign level attempt or infinite run.
type Run struct {
	ID        string
	Mode      string // "campaign" or "infinite"
	Level     int    // Campaign level id
	Round     int    // Last infinite round reached
	Score     int
	Stars     int
	Outcome   string // "won" or "lost"
	CreatedAt time.Time
}

// Stats aggregates the runs of one mode.
type Stats struct {
	Mode       string
	Runs       int
	Best       int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			round INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			stars INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the persisted high score, or 0 if none was written.
func (s *Store) HighScore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", HighScoreKey).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore overwrites the persisted high score.
func (s *Store) SetHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		HighScoreKey, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// RecordRun stores a finished run. An empty ID is replaced with a new UUID,
// which is returned.
func (s *Store) RecordRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, mode, level, round, score, stars, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Mode, r.Level, r.Round, r.Score, r.Stars, r.Outcome,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns retrieves the most recent runs across both modes.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, mode, level, round, score, stars, outcome, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// BestRuns retrieves the top N runs for a mode, ordered by score descending.
func (s *Store) BestRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, mode, level, round, score, stars, outcome, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		mode, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Level, &r.Round, &r.Score, &r.Stars, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics for a mode.
func (s *Store) Stats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &stats.Best, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes the run history of a mode. The high score is kept.
func (s *Store) ClearRuns(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
