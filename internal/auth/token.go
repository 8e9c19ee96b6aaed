// Package auth persists the bearer token between CLI invocations.
package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FileStore keeps the token in a mode-0600 file. It satisfies
// api.TokenSource: the transport reads the token per request and clears it
// when the server rejects it.
type FileStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	token  string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is ~/.config/prodtrack/token.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prodtrack", "token"), nil
}

// Token returns the stored token, or "" when absent or visibly expired.
// An expired JWT is dropped up front so the request fails as "not logged
// in" instead of taking a guaranteed 401 round trip.
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		raw, err := os.ReadFile(s.path)
		if err == nil {
			s.token = strings.TrimSpace(string(raw))
		}
		s.loaded = true
	}
	if s.token != "" && expired(s.token) {
		s.token = ""
		_ = os.Remove(s.path)
	}
	return s.token
}

func (s *FileStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("auth: empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return err
	}
	s.token = token
	s.loaded = true
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.loaded = true
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// expired inspects the exp claim without verifying the signature; the
// server verifies, we only avoid sending tokens we know are dead. An opaque
// (non-JWT) token is assumed live.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
