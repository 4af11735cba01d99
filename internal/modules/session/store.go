// README: Concurrent in-memory session store with per-user serialization.
package session

import "sync"

// Store is the session registry injected into the dialogue engine.
// Acquire serializes all access to one user's session: no two turns for
// the same user may interleave, while different users proceed in
// parallel.
type Store interface {
	// Acquire returns the user's session, creating it on first contact,
	// and locks it until release is called.
	Acquire(userID string) (sess *Session, release func())
	// Peek returns the session without locking it; intended for
	// read-only inspection in tests and diagnostics.
	Peek(userID string) (*Session, bool)
	// Reset reinitializes the user's session to defaults and returns it.
	Reset(userID string) *Session
	// Delete removes the session entirely; the next contact recreates it.
	Delete(userID string)
}

type entry struct {
	mu   sync.Mutex
	sess *Session
}

// MemoryStore keeps sessions for the lifetime of the process. There is
// deliberately no TTL or eviction; see the known-limitations note in
// DESIGN.md.
type MemoryStore struct {
	mu      sync.Mutex
	goal    Goal
	entries map[string]*entry
}

func NewMemoryStore(goal Goal) *MemoryStore {
	return &MemoryStore{
		goal:    goal,
		entries: make(map[string]*entry),
	}
}

// acquireEntry creates the entry lazily; safe under parallel first
// contact because the map itself is guarded by s.mu.
func (s *MemoryStore) acquireEntry(userID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{sess: New(userID, s.goal)}
		s.entries[userID] = e
	}
	return e
}

func (s *MemoryStore) Acquire(userID string) (*Session, func()) {
	e := s.acquireEntry(userID)
	e.mu.Lock()
	return e.sess, e.mu.Unlock
}

func (s *MemoryStore) Peek(userID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		return nil, false
	}
	return e.sess, true
}

func (s *MemoryStore) Reset(userID string) *Session {
	sess, release := s.Acquire(userID)
	defer release()
	sess.Reset()
	return sess
}

func (s *MemoryStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}
