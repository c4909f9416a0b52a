package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store for single-instance deployments and
// tests. Expiry is enforced lazily on Get; a Sweeper reclaims entries that
// are never read again.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(m.sessions, id)
		return nil, ErrNotFound
	}

	s := e.session
	s.ID = id
	return &s, nil
}

func (m *MemoryStore) Set(_ context.Context, id string, s *Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = memoryEntry{session: *s, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Sweep deletes every expired entry and reports how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, e := range m.sessions {
		if now.After(e.expiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *MemoryStore) Destroy(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}
