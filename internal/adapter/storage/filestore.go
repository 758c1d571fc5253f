// Package storage holds the persisted session state between CLI runs,
// playing the role the browser's local storage plays for the web client:
// a handful of string keys in one local file.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"

	"projectmanager/internal/core/ports"
)

type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

var _ ports.KeyValue = (*FileStore)(nil)

// OpenFileStore loads the store from path, tolerating a missing file.
// An unreadable or malformed file is treated as empty; the session layer
// decides what to do about untrusted state, not the storage layer.
func OpenFileStore(path string) *FileStore {
	store := &FileStore{path: path, values: map[string]string{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			zap.L().Warn("failed to read session file", zap.String("path", path), zap.Error(err))
		}
		return store
	}

	if err := json.Unmarshal(raw, &store.values); err != nil {
		zap.L().Warn("session file is not valid JSON, starting empty", zap.String("path", path), zap.Error(err))
		store.values = map[string]string{}
	}

	return store
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *FileStore) Set(pairs map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range pairs {
		s.values[key] = value
	}
	return s.persist()
}

func (s *FileStore) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}
	return s.persist()
}

func (s *FileStore) persist() error {
	encoded, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, encoded, 0o600)
}
