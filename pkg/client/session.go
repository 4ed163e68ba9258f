package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Session holds the authenticated user's token and tenant context. It is
// persisted to a JSON file so the backoffice survives restarts without
// re-login.
type Session struct {
	mu   sync.RWMutex
	path string

	Token    string `json:"token"`
	TenantID uint   `json:"tenant_id"`
	Email    string `json:"email"`
}

// LoadSession reads a session file, returning an empty session when the
// file does not exist yet.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		// A corrupt session file falls back to logged-out
		return &Session{path: path}, nil
	}
	return s, nil
}

// Set stores the token and tenant context and persists the session
func (s *Session) Set(token string, tenantID uint, email string) error {
	s.mu.Lock()
	s.Token = token
	s.TenantID = tenantID
	s.Email = email
	s.mu.Unlock()
	return s.save()
}

// Clear wipes the session and removes the file
func (s *Session) Clear() error {
	s.mu.Lock()
	s.Token = ""
	s.TenantID = 0
	s.Email = ""
	path := s.path
	s.mu.Unlock()

	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Authenticated reports whether a token is stored
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Token != ""
}

// Credentials returns the stored token and tenant id.
// ErrNotAuthenticated is returned when no token is stored.
func (s *Session) Credentials() (token string, tenantID uint, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Token == "" {
		return "", 0, ErrNotAuthenticated
	}
	return s.Token, s.TenantID, nil
}

func (s *Session) save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.path == "" {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
