package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the test/fallback implementation of Store. Same sliding-TTL
// behavior as the Redis store, expiry checked lazily on read.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     SessionTTL,
		now:     time.Now,
	}
}

func (s *MemoryStore) Set(ctx context.Context, token string, sess Session, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{sess: sess, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, token)
		return Session{}, ErrSessionNotFound
	}

	entry.expiresAt = s.now().Add(s.ttl)
	s.entries[token] = entry
	return entry.sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
