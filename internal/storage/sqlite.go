// Package storage provides SQLite-based persistence for match history.
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

// Match sources.
const (
	SourceLocal = "local"
	SourceSSH   = "ssh"
	SourceSim   = "sim"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Match is a single recorded pong match.
type Match struct {
	ID           string
	Player1      string
	Player2      string
	Score1       int
	Score2       int
	Ticks        int64
	Duration     time.Duration
	LongestRally int
	Source       string
	CreatedAt    time.Time
}

// Winner returns the winning player's name, or "draw".
func (m Match) Winner() string {
	switch {
	case m.Score1 > m.Score2:
		return m.Player1
	case m.Score2 > m.Score1:
		return m.Player2
	default:
		return "draw"
	}
}

// Stats contains aggregated statistics over all recorded matches.
type Stats struct {
	Matches      int
	Player1Wins  int
	Player2Wins  int
	Draws        int
	TotalPoints  int
	LongestRally int
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			longest_rally INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_source ON matches(source);
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

// SaveMatch records a finished match and returns its ID.
// A random UUID is assigned when m.ID is empty. A zero CreatedAt is
// replaced with the current time.
func (s *Store) SaveMatch(m Match) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if m.Source == "" {
		m.Source = SourceLocal
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (id, player1, player2, score1, score2, ticks, duration_ms, longest_rally, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.Player1,
		m.Player2,
		m.Score1,
		m.Score2,
		m.Ticks,
		m.Duration.Milliseconds(),
		m.LongestRally,
		m.Source,
		m.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}

	return m.ID, nil
}

// MatchByID retrieves a match by its ID.
// Returns nil without error if no such match exists.
func (s *Store) MatchByID(id string) (*Match, error) {
	row := s.db.QueryRow(
		`SELECT id, player1, player2, score1, score2, ticks, duration_ms, longest_rally, source, created_at
		 FROM matches
		 WHERE id = ?`,
		id,
	)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player1, player2, score1, score2, ticks, duration_ms, longest_rally, source, created_at
		 FROM matches
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// Stats aggregates all recorded matches.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN score1 > score2 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN score2 > score1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN score1 = score2 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(score1 + score2), 0),
		        COALESCE(MAX(longest_rally), 0),
		        MAX(created_at)
		 FROM matches`,
	).Scan(
		&stats.Matches,
		&stats.Player1Wins,
		&stats.Player2Wins,
		&stats.Draws,
		&stats.TotalPoints,
		&stats.LongestRally,
		&lastPlayed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (Match, error) {
	var m Match
	var durationMS int64
	var createdAt any

	err := row.Scan(
		&m.ID,
		&m.Player1,
		&m.Player2,
		&m.Score1,
		&m.Score2,
		&m.Ticks,
		&durationMS,
		&m.LongestRally,
		&m.Source,
		&createdAt,
	)
	if err != nil {
		return Match{}, err
	}

	m.Duration = time.Duration(durationMS) * time.Millisecond
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
