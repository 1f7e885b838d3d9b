package domain

import "time"

// SessionStatus tracks the session lifecycle.
type SessionStatus string

const (
	// SessionStatusNew is the state between creation and the first turn.
	SessionStatusNew SessionStatus = "new"
	// SessionStatusActive means at least one turn has been processed.
	SessionStatusActive SessionStatus = "active"
	// SessionStatusEnded means the session was explicitly terminated.
	SessionStatusEnded SessionStatus = "ended"
)

// Session is persistence metadata for one conversation.
type Session struct {
	SessionID string        `json:"session_id"`
	Status    SessionStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// TurnRecord is one user/assistant exchange. Append-only; immutable once
// created; retained for the lifetime of the session for summary generation.
type TurnRecord struct {
	SessionID string    `json:"session_id"`
	Turn      int       `json:"turn"`
	UserText  string    `json:"user_text"`
	AIText    string    `json:"ai_text"`
	Emotion   Emotion   `json:"emotion"`
	IsCrisis  bool      `json:"is_crisis"`
	CreatedAt time.Time `json:"created_at"`
}
