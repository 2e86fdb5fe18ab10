package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	attempts  int64
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

// NewMemoryStore is an in-process Store used by tests and single-node dev
// setups without Redis.
func NewMemoryStore() Store {
	return &memoryStore{entries: map[string]*memoryEntry{}}
}

func (s *memoryStore) Put(ctx context.Context, key, code string, ttl time.Duration) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &memoryEntry{value: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return "", nil
	}
	return entry.value, nil
}

func (s *memoryStore) IncrAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		entry = &memoryEntry{expiresAt: time.Now().Add(ttl)}
		s.entries[key] = entry
	}
	entry.attempts++
	return entry.attempts, nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
