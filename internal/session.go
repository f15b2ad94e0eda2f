package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNotInitialized = errors.New("scope not initialized (run 'halo init')")

// SessionStore persists the five collections between invocations as a JSON
// document under the scope directory. The five record types double as the
// durable schema.
type SessionStore struct {
	path string
}

func NewSessionStore(scope Scope) *SessionStore {
	return &SessionStore{path: scope.SessionPath()}
}

// Load reads the persisted session, returning an empty one when no file
// exists yet.
func (s *SessionStore) Load() (*SessionMemory, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return NewSessionMemory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	mem := NewSessionMemory()
	if err := json.Unmarshal(data, mem); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return mem, nil
}

func (s *SessionStore) Save(mem *SessionMemory) error {
	data, err := json.MarshalIndent(mem, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Reset deletes the persisted session; a missing file is not an error.
func (s *SessionStore) Reset() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
