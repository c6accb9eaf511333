package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore keeps all entries in one JSON document that is rewritten on
// every mutation.
type fileStore struct {
	path  string
	quota int64

	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

type filePersistedState struct {
	Items map[string]string `json:"items"`
}

// NewFileStore opens the JSON file at path, creating it on the first write.
// A positive quotaBytes caps the summed size of all keys and values.
func NewFileStore(path string, quotaBytes int64) (KeyValueStore, error) {
	s := &fileStore{
		path:  path,
		quota: quotaBytes,
		items: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, storageError("open", path, err, nil)
	}
	return s, nil
}

func (s *fileStore) Get(ctx context.Context, key string) (string, bool, error) {
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

func (s *fileStore) Set(ctx context.Context, key, value string) error {
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

	prev, existed := s.items[key]
	s.items[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return storageError("set", key, err, nil)
	}
	return nil
}

func (s *fileStore) Remove(ctx context.Context, key string) error {
	if err := checkCall(ctx, "remove", key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storageError("remove", key, errClosed, nil)
	}

	prev, existed := s.items[key]
	if !existed {
		return nil
	}
	delete(s.items, key)
	if err := s.persist(); err != nil {
		s.items[key] = prev
		return storageError("remove", key, err, nil)
	}
	return nil
}

func (s *fileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	if st.Items != nil {
		s.items = st.Items
	}

	return nil
}

// persist writes the state to a temporary file in the same directory and
// renames it over the target.
func (s *fileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp local storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync local storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close local storage file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}
