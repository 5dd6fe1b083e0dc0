package services

import (
	"log"
	"sync"
	"time"

	"github.com/warungdigital/warung-backend/internal/models"
)

// SessionStore owns all conversation sessions, keyed by phone number.
// Sessions are created lazily on the first message from a new number.
//
// Turns for the same phone number must never interleave, or two concurrent
// answers would race to populate the same draft. Do serializes access with a
// per-phone lock; sessions of different phones proceed independently.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *models.Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[string]*sessionEntry),
	}
}

// Do runs fn with exclusive access to the session for phone, creating the
// session at the greeting step if it does not exist yet. Mutations fn makes
// to the session are retained.
func (s *SessionStore) Do(phone string, fn func(session *models.Session) error) error {
	entry := s.entry(phone)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.LastActive = time.Now()
	return fn(entry.session)
}

// Peek returns a copy of the current session state for phone, or nil if the
// phone has never messaged. Intended for monitoring and tests.
func (s *SessionStore) Peek(phone string) *models.Session {
	s.mu.Lock()
	entry, exists := s.entries[phone]
	s.mu.Unlock()
	if !exists {
		return nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	copied := *entry.session
	return &copied
}

// Reset discards the dialog progress for phone, returning the session to the
// greeting step with an empty draft.
func (s *SessionStore) Reset(phone string) {
	entry := s.entry(phone)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.session.Reset()
	log.Printf("🔄 Session reset for %s", phone)
}

// Count returns the number of live sessions (for the health endpoint).
func (s *SessionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *SessionStore) entry(phone string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[phone]
	if !exists {
		entry = &sessionEntry{session: models.NewSession(phone)}
		s.entries[phone] = entry
		log.Printf("💬 New conversation session for %s", phone)
	}
	return entry
}
