package tokenstore

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// FileStore backs the persistent slot with a file on disk while keeping the
// session slot in memory. The file is read once at construction; writers go
// through SetToken.
type FileStore struct {
	path string

	mu         sync.RWMutex
	persistent string
	session    string
}

// NewFileStore loads the persistent token from path if the file exists.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}

	s.persistent = strings.TrimSpace(string(raw))
	return s, nil
}

// Token returns the persistent token when set, otherwise the session token.
func (s *FileStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.persistent != "" {
		return s.persistent, true
	}
	if s.session != "" {
		return s.session, true
	}
	return "", false
}

// SetToken writes a token into the given slot. Persistent writes go to disk
// with owner-only permissions.
func (s *FileStore) SetToken(slot Slot, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch slot {
	case SlotPersistent:
		if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
			return fmt.Errorf("write token file: %w", err)
		}
		s.persistent = token
	case SlotSession:
		s.session = token
	}
	return nil
}

// Clear removes tokens from both slots and deletes the backing file.
func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persistent = ""
	s.session = ""
	_ = os.Remove(s.path)
}

// Ensure interface compliance.
var (
	_ Store = (*Memory)(nil)
	_ Store = (*FileStore)(nil)
)
