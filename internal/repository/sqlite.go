// Package repository persists session transcripts to SQLite so operators
// can review sessions and summaries survive process restarts.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// TranscriptStore defines the persistence interface for sessions and turns.
type TranscriptStore interface {
	CreateSession(ctx context.Context, s *domain.Session) error
	UpdateSessionStatus(ctx context.Context, sessionID string, status domain.SessionStatus) error
	RecordTurn(ctx context.Context, t *domain.TurnRecord) error
	GetTurns(ctx context.Context, sessionID string, limit int) ([]domain.TurnRecord, error)
	EmotionCounts(ctx context.Context, sessionID string) (map[domain.Emotion]int, error)
	Close() error
}

// SQLiteStore implements TranscriptStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

var _ TranscriptStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens the database and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS turns (
			session_id TEXT NOT NULL,
			turn INTEGER NOT NULL,
			user_text TEXT NOT NULL,
			ai_text TEXT NOT NULL,
			emotion TEXT NOT NULL,
			is_crisis INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (session_id, turn),
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, created_at)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// CreateSession inserts the session row, ignoring duplicates.
func (s *SQLiteStore) CreateSession(ctx context.Context, sess *domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO sessions (session_id, status, created_at) VALUES (?, ?, ?)`,
		sess.SessionID, string(sess.Status), sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// UpdateSessionStatus moves the session through its lifecycle.
func (s *SQLiteStore) UpdateSessionStatus(ctx context.Context, sessionID string, status domain.SessionStatus) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status = ? WHERE session_id = ?`,
		string(status), sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// RecordTurn appends one exchange. Turns are immutable once written.
func (s *SQLiteStore) RecordTurn(ctx context.Context, t *domain.TurnRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO turns (session_id, turn, user_text, ai_text, emotion, is_crisis, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.SessionID, t.Turn, t.UserText, t.AIText, string(t.Emotion), boolToInt(t.IsCrisis), t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record turn: %w", err)
	}
	return nil
}

// GetTurns returns the most recent turns oldest-first. limit <= 0 means all.
func (s *SQLiteStore) GetTurns(ctx context.Context, sessionID string, limit int) ([]domain.TurnRecord, error) {
	query := `SELECT session_id, turn, user_text, ai_text, emotion, is_crisis, created_at
		FROM turns WHERE session_id = ? ORDER BY turn DESC`
	args := []interface{}{sessionID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.TurnRecord
	for rows.Next() {
		var t domain.TurnRecord
		var emotion string
		var isCrisis int
		var createdAt time.Time
		if err := rows.Scan(&t.SessionID, &t.Turn, &t.UserText, &t.AIText, &emotion, &isCrisis, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		t.Emotion = domain.Emotion(emotion)
		t.IsCrisis = isCrisis != 0
		t.CreatedAt = createdAt
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate turns: %w", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// EmotionCounts returns a histogram of turn emotions for the session.
func (s *SQLiteStore) EmotionCounts(ctx context.Context, sessionID string) (map[domain.Emotion]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT emotion, COUNT(*) FROM turns WHERE session_id = ? GROUP BY emotion`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query emotion counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Emotion]int)
	for rows.Next() {
		var emotion string
		var n int
		if err := rows.Scan(&emotion, &n); err != nil {
			return nil, fmt.Errorf("failed to scan emotion count: %w", err)
		}
		counts[domain.Emotion(emotion)] = n
	}
	return counts, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
