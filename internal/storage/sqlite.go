// Package storage provides SQLite-based persistence for play history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pongping/internal/core"
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionEntry is one played session: from game start until the player quit.
type SessionEntry struct {
	ID        int64
	Key       string // Unique session key (UUID)
	Backend   string // Backend the session was played on
	Score1    int
	Score2    int
	Points    int // Points played
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is still open
}

// PointEntry is a single scored point within a session.
type PointEntry struct {
	ID          int64
	SessionID   int64
	Scorer      core.PlayerID
	Score1      int // Score pair after the point
	Score2      int
	RallyFrames int
	CreatedAt   time.Time
}

// Totals aggregates all recorded sessions.
type Totals struct {
	Sessions   int
	Points     int
	Player1Won int // Points won by player 1
	Player2Won int // Points won by player 2
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows one writer; SSH sessions share this store.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_key TEXT NOT NULL UNIQUE,
			backend TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			points INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME
		);

		CREATE TABLE IF NOT EXISTS points (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			scorer INTEGER NOT NULL,
			score1 INTEGER NOT NULL,
			score2 INTEGER NOT NULL,
			rally_frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_points_session ON points(session_id);
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

// BeginSession opens a new session record.
// Returns the ID of the inserted record.
func (s *Store) BeginSession(key, backend string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (session_key, backend) VALUES (?, ?)",
		key, backend,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordPoint appends a point to a session and updates the session's running score.
func (s *Store) RecordPoint(sessionID int64, scorer core.PlayerID, score1, score2, rallyFrames int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		`INSERT INTO points (session_id, scorer, score1, score2, rally_frames)
		 VALUES (?, ?, ?, ?, ?)`,
		sessionID, int(scorer), score1, score2, rallyFrames,
	); err != nil {
		return fmt.Errorf("storage: cannot record point: %w", err)
	}

	res, err := tx.Exec(
		"UPDATE sessions SET score1 = ?, score2 = ?, points = points + 1 WHERE id = ?",
		score1, score2, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("storage: unknown session %d", sessionID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit point: %w", err)
	}
	return nil
}

// EndSession stores the final score pair and closes the session.
func (s *Store) EndSession(sessionID int64, score1, score2 int) error {
	res, err := s.db.Exec(
		"UPDATE sessions SET score1 = ?, score2 = ?, ended_at = CURRENT_TIMESTAMP WHERE id = ?",
		score1, score2, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("storage: unknown session %d", sessionID)
	}
	return nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_key, backend, score1, score2, points, started_at, ended_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var startedAt, endedAt any
		if err := rows.Scan(&e.ID, &e.Key, &e.Backend, &e.Score1, &e.Score2, &e.Points, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.StartedAt = parseTime(startedAt)
		e.EndedAt = parseTime(endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SessionPoints retrieves every point of a session in the order they were scored.
func (s *Store) SessionPoints(sessionID int64) ([]PointEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, scorer, score1, score2, rally_frames, created_at
		 FROM points
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query points: %w", err)
	}
	defer rows.Close()

	var entries []PointEntry
	for rows.Next() {
		var e PointEntry
		var scorer int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &scorer, &e.Score1, &e.Score2, &e.RallyFrames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Scorer = core.PlayerID(scorer)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Totals aggregates points over all sessions.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&t.Sessions)
	if err != nil {
		return t, fmt.Errorf("storage: cannot count sessions: %w", err)
	}

	var p1, p2 sql.NullInt64
	err = s.db.QueryRow(
		`SELECT COUNT(*),
		        SUM(CASE WHEN scorer = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN scorer = ? THEN 1 ELSE 0 END)
		 FROM points`,
		int(core.Player1), int(core.Player2),
	).Scan(&t.Points, &p1, &p2)
	if err != nil {
		return t, fmt.Errorf("storage: cannot aggregate points: %w", err)
	}

	// SUM over no rows is NULL
	t.Player1Won = int(p1.Int64)
	t.Player2Won = int(p2.Int64)
	return t, nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
