package storage

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryScratchStore keeps entries in process memory. Entries do not survive
// a restart. With a TTL, each write refreshes the entry's expiry and
// PurgeExpired drops what has lapsed.
type MemoryScratchStore struct {
	TTL time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryScratchStore() *MemoryScratchStore {
	return NewMemoryScratchStoreWithTTL(0)
}

func NewMemoryScratchStoreWithTTL(ttl time.Duration) *MemoryScratchStore {
	return &MemoryScratchStore{TTL: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (s *MemoryScratchStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	if !ok || entry.expired(s.now()) {
		return nil, false, nil
	}
	return append([]byte(nil), entry.value...), true, nil
}

func (s *MemoryScratchStore) Set(ctx context.Context, key string, value []byte) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if s.TTL > 0 {
		entry.expiresAt = s.now().Add(s.TTL)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
	return nil
}

func (s *MemoryScratchStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// PurgeExpired removes lapsed entries and reports how many went.
func (s *MemoryScratchStore) PurgeExpired(ctx context.Context) (int64, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	var purged int64
	for key, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, key)
			purged++
		}
	}
	return purged, nil
}
