package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-game-keeper/models"
)

// ErrLocalSessionNotFound is returned by Load when nobody is logged in.
var ErrLocalSessionNotFound = errors.New("local session not found")

// fileSessionStorage keeps the CLI session as a small JSON file readable only
// by the owner.
type fileSessionStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileSessionStorage returns a [SessionStorage] persisted at path.
func NewFileSessionStorage(path string) SessionStorage {
	return &fileSessionStorage{path: path}
}

func (s *fileSessionStorage) Load() (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		return models.Session{}, fmt.Errorf("read local session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode local session file: %w", err)
	}

	if session.IsZero() {
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (s *fileSessionStorage) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create local session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local session file: %w", err)
	}

	return nil
}

func (s *fileSessionStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove local session file: %w", err)
	}
	return nil
}
