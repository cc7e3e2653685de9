package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/drcity/portal/api/internal/models"
	"github.com/google/uuid"
)

// Session is one visitor's navigation and capture state.
type Session struct {
	ID        string              `json:"id"`
	Selection models.Selection    `json:"selection"`
	Capture   models.CaptureState `json:"capture"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// SessionStore holds sessions in memory. Sessions are values: Update swaps
// the stored value under the write lock, so a reader sees either the state
// before a transition or the state after it.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create stores a new session with a random id.
func (s *SessionStore) Create(selection models.Selection, capture models.CaptureState) Session {
	now := s.now().UTC()
	session := Session{
		ID:        uuid.NewString(),
		Selection: selection,
		Capture:   capture,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns a copy of the session.
func (s *SessionStore) Get(id string) (Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// Update applies fn to the session and stores the result. fn runs under the
// write lock and must not call back into the store. When fn returns an error
// the stored session is left unchanged.
func (s *SessionStore) Update(id string, fn func(Session) (Session, error)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	next, err := fn(current)
	if err != nil {
		return current, err
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = s.now().UTC()
	s.sessions[id] = next
	return next, nil
}

// Expire removes sessions not updated since cutoff and returns how many were removed.
func (s *SessionStore) Expire(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
