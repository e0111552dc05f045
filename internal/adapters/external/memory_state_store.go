package external

import (
	"context"
	"sync"
	"time"

	"weatherview.app/pkg/errors"
)

// MemoryStateStore keeps view state in process memory with per-key expiry
type MemoryStateStore struct {
	data  map[string]memoryStateItem
	mutex sync.RWMutex
	now   func() time.Time
}

type memoryStateItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		data: make(map[string]memoryStateItem),
		now:  time.Now,
	}
}

func (s *MemoryStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("state key cannot be empty")
	}

	s.mutex.RLock()
	item, exists := s.data[key]
	s.mutex.RUnlock()

	if !exists || s.now().After(item.expiresAt) {
		return nil, errors.NewNotFoundError("view state not found")
	}

	out := make([]byte, len(item.data))
	copy(out, item.data)
	return out, nil
}

func (s *MemoryStateStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("state key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("state value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("state TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	s.purgeExpired(now)
	s.data[key] = memoryStateItem{
		data:      stored,
		expiresAt: now.Add(ttl),
	}

	return nil
}

func (s *MemoryStateStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("state key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

func (s *MemoryStateStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStateStore) Name() string {
	return "memory"
}

// Len returns the number of live entries
func (s *MemoryStateStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	now := s.now()
	count := 0
	for _, item := range s.data {
		if !now.After(item.expiresAt) {
			count++
		}
	}
	return count
}

// purgeExpired drops expired entries. Must be called while holding the write lock.
func (s *MemoryStateStore) purgeExpired(now time.Time) {
	for key, item := range s.data {
		if now.After(item.expiresAt) {
			delete(s.data, key)
		}
	}
}
