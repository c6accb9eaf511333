package store

import (
	"context"
	"fmt"
	"sync"
)

// memoryStore keeps entries in process memory. Nothing survives Close.
type memoryStore struct {
	mu     sync.RWMutex
	items  map[string]string
	quota  int64
	closed bool
}

// NewMemoryStore returns an in-process [KeyValueStore]. A positive
// quotaBytes caps the summed size of all keys and values.
func NewMemoryStore(quotaBytes int64) KeyValueStore {
	return &memoryStore{items: make(map[string]string), quota: quotaBytes}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkCall(ctx, "get", key); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, storageError("get", key, errClosed, nil)
	}

	value, ok := s.items[key]
	return value, ok, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	if err := checkCall(ctx, "set", key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storageError("set", key, errClosed, nil)
	}
	if err := checkQuota(s.items, key, value, s.quota); err != nil {
		return storageError("set", key, err, nil)
	}

	s.items[key] = value
	return nil
}

func (s *memoryStore) Remove(ctx context.Context, key string) error {
	if err := checkCall(ctx, "remove", key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storageError("remove", key, errClosed, nil)
	}

	delete(s.items, key)
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.items = nil
	return nil
}

// errClosed is reported by the in-process backends after Close.
var errClosed = fmt.Errorf("%w: store is closed", ErrStoreUnavailable)

// checkCall rejects empty keys and cancelled contexts before a backend is
// touched.
func checkCall(ctx context.Context, op, key string) error {
	if key == "" {
		return fmt.Errorf("%w: %s: %w", ErrStorage, op, ErrEmptyKey)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrStorage, op, key, err)
	}
	return nil
}

// checkQuota reports [ErrQuotaExceeded] when writing key=value to items
// would push the summed size of keys and values above quota. A quota of
// zero or less disables the check.
func checkQuota(items map[string]string, key, value string, quota int64) error {
	if quota <= 0 {
		return nil
	}

	var used int64
	for k, v := range items {
		if k == key {
			continue
		}
		used += int64(len(k) + len(v))
	}
	if need := used + int64(len(key)+len(value)); need > quota {
		return fmt.Errorf("%w: need %d of %d bytes", ErrQuotaExceeded, need, quota)
	}
	return nil
}
