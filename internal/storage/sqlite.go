// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is the outcome of one headless run.
type RunRecord struct {
	ID         int64
	Pilot      string
	Seed       int64
	Difficulty string
	Score      int
	Level      int // highest level reached, 1-based
	Frames     int
	GameOver   bool
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pilot TEXT NOT NULL,
			seed INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			frames INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pilot ON runs(pilot);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(pilot, score DESC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "normal"
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (pilot, seed, difficulty, score, level, frames, game_over)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Pilot, r.Seed, difficulty, r.Score, r.Level, r.Frames, r.GameOver,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs of a pilot, or of all pilots when pilot is empty.
// Results are ordered by score descending.
func (s *Store) TopRuns(pilot string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pilot, seed, difficulty, score, level, frames, game_over, created_at
		 FROM runs
		 WHERE ? = '' OR pilot = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		pilot, pilot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Pilot, &r.Seed, &r.Difficulty, &r.Score, &r.Level, &r.Frames, &r.GameOver, &createdAt); err != nil {
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

// HighScore returns the highest score of the given pilot.
// Returns 0 if no runs exist.
func (s *Store) HighScore(pilot string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE pilot = ?",
		pilot,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs of the given pilot.
func (s *Store) ClearRuns(pilot string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE pilot = ?", pilot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// PilotStats contains aggregated statistics for a pilot.
type PilotStats struct {
	Pilot      string
	Runs       int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	GameOvers  int
	TotalScore int64
	LastRun    time.Time
}

// GetPilotStats retrieves aggregated statistics for a specific pilot.
func (s *Store) GetPilotStats(pilot string) (*PilotStats, error) {
	stats := &PilotStats{Pilot: pilot}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(game_over), 0), COALESCE(SUM(score), 0)
		 FROM runs WHERE pilot = ?`,
		pilot,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &stats.GameOvers, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pilot stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE pilot = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		pilot,
	).Scan(&lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// GetAllPilotStats retrieves statistics for every pilot that has runs.
func (s *Store) GetAllPilotStats() (map[string]*PilotStats, error) {
	rows, err := s.db.Query(
		`SELECT pilot, COUNT(*), MAX(score), AVG(score), MAX(level), SUM(game_over), SUM(score), MAX(created_at)
		 FROM runs
		 GROUP BY pilot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all pilot stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PilotStats)
	for rows.Next() {
		var ps PilotStats
		var lastRun any
		if err := rows.Scan(&ps.Pilot, &ps.Runs, &ps.HighScore, &ps.AvgScore, &ps.BestLevel, &ps.GameOvers, &ps.TotalScore, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastRun = parseTime(lastRun)
		stats[ps.Pilot] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
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
