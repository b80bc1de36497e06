package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrSessionNotFound is returned by [SessionStore.Load] when nobody has
// logged in yet or the session was cleared.
var ErrSessionNotFound = errors.New("local session not found")

// Session is the persisted result of the last successful login.
type Session struct {
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	Token    string    `json:"token"`
	At       time.Time `json:"at"`
}

// SessionStore keeps a single [Session] in a JSON file readable only by the
// current user. The path ":memory:" keeps it in process memory instead.
type SessionStore struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	session *Session
}

// DefaultSessionPath returns session.json under the user config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "notes-and-tags", "session.json"), nil
}

func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		defaultPath, err := DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	s := &SessionStore{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SessionStore) Load() (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil || s.session.Token == "" {
		return Session{}, ErrSessionNotFound
	}
	return *s.session, nil
}

func (s *SessionStore) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &session
	return s.persist()
}

// Clear forgets the session and removes the file.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if s.inMemory {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *SessionStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var session Session
	if err = json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}

	s.session = &session
	return nil
}

func (s *SessionStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
