package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSessionTTL  = 24 * time.Hour
	defaultMaxSessions = 10000
)

// Store is the in-memory session store. Sessions age out after the TTL;
// there is no persistence across restarts, matching the transient
// per-page-load nature of the batch state that hangs off a session.
type Store struct {
	sessions *expirable.LRU[string, *Session]
}

// NewStore creates a session store with the given TTL and capacity.
func NewStore(ttl time.Duration, maxSessions int) *Store {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Create makes a new anonymous session.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.sessions.Add(sess.ID, sess)
	return sess
}

// Get returns the session for the id, or ErrSessionNotFound.
func (s *Store) Get(id string) (*Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Save stores the (possibly updated) session back, refreshing its TTL.
func (s *Store) Save(sess *Session) {
	s.sessions.Add(sess.ID, sess)
}

// Delete removes the session.
func (s *Store) Delete(id string) {
	s.sessions.Remove(id)
}
