package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	docform "github.com/Rejishankar/docform"
)

const sessionTTL = time.Hour

// Session holds one extraction result while the user edits it. The core
// artifacts inside are immutable; edits travel in request bodies and are
// validated against the session's ruleset.
type Session struct {
	ID         string
	CreatedAt  time.Time
	Derivation docform.Derivation
}

// SessionStore is an in-memory session registry. Stale sessions are pruned
// opportunistically on create.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create registers a derivation under a fresh session id.
func (s *SessionStore) Create(d docform.Derivation) Session {
	session := Session{
		ID:         uuid.NewString(),
		CreatedAt:  s.now(),
		Derivation: d,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.sessions {
		if s.now().Sub(existing.CreatedAt) > sessionTTL {
			delete(s.sessions, id)
		}
	}
	s.sessions[session.ID] = session
	return session
}

// Get looks up a session by id.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Delete removes a session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
