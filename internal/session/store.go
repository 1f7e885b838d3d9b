// Package session holds per-conversation runtime state and the in-memory
// store that owns it.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pranavshinde369/feelio/internal/adapter/llm"
	"github.com/pranavshinde369/feelio/internal/domain"
	"github.com/pranavshinde369/feelio/internal/trajectory"
)

// ErrNotFound is returned when a session id is unknown.
var ErrNotFound = errors.New("session not found")

// State is the aggregate root for one conversation. Exclusively owned by
// the serving process; never shared across sessions. Turn processing locks
// the state for its full duration, preserving the single-writer invariant
// for the trajectory and turn log.
type State struct {
	ID           string
	Status       domain.SessionStatus
	CreatedAt    time.Time
	Trajectory   *trajectory.Tracker
	Turns        []domain.TurnRecord
	Conversation llm.Conversation
	Signals      *Cell

	mu sync.Mutex
}

// Lock serializes turn processing for this session. Concurrent turns
// against one id are last-write-wins by contract; the lock just keeps the
// internal state coherent.
func (s *State) Lock() { s.mu.Lock() }

// Unlock releases the turn lock.
func (s *State) Unlock() { s.mu.Unlock() }

// AppendTurn records a completed exchange and marks the session active.
func (s *State) AppendTurn(t domain.TurnRecord) {
	s.Turns = append(s.Turns, t)
	s.Status = domain.SessionStatusActive
}

// Store is the session lifecycle capability injected into the orchestrator:
// create, get, delete by id. Idle eviction is deliberately absent.
type Store interface {
	Create(sessionID string, conv llm.Conversation) *State
	Get(sessionID string) (*State, error)
	Delete(sessionID string)
	Len() int
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*State)}
}

var _ Store = (*MemoryStore)(nil)

// Create registers a new session. An empty id gets a generated one. If the
// id already exists the existing session is returned untouched.
func (m *MemoryStore) Create(sessionID string, conv llm.Conversation) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	if existing, ok := m.sessions[sessionID]; ok {
		return existing
	}

	s := &State{
		ID:           sessionID,
		Status:       domain.SessionStatusNew,
		CreatedAt:    time.Now(),
		Trajectory:   trajectory.NewTracker(),
		Conversation: conv,
		Signals:      NewCell(),
	}
	m.sessions[sessionID] = s
	return s
}

// Get returns the session or ErrNotFound.
func (m *MemoryStore) Get(sessionID string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes the session. Missing ids are a no-op.
func (m *MemoryStore) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
