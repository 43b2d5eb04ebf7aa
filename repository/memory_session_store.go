package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemorySessionStore is an in-process SessionStore with lazy expiry. It
// serves tests and single-node deployments without Redis.
type MemorySessionStore struct {
	mu   sync.Mutex
	data map[string]memoryEntry

	// Now is the clock used for expiry checks; tests may override it.
	Now func() time.Time
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		data: make(map[string]memoryEntry),
		Now:  time.Now,
	}
}

func (s *MemorySessionStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = memoryEntry{
		value:     value,
		expiresAt: s.Now().Add(ttl),
	}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.data[key]
	if !ok {
		return "", false
	}
	if s.Now().After(entry.expiresAt) {
		delete(s.data, key)
		return "", false
	}
	return entry.value, true
}

func (s *MemorySessionStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
