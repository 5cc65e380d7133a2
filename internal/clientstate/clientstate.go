// Package clientstate persists the console's local state between runs.
package clientstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

const fileName = "state.json"

type state struct {
	CartSessionID string   `json:"cart_session_id,omitempty"`
	AccessToken   string   `json:"access_token,omitempty"`
	Cart          []string `json:"cart,omitempty"`
}

// Store is a JSON file holding the cart session id and the access token.
type Store struct {
	path string

	mu sync.Mutex
	st state
}

// DefaultDir returns the per-user state directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, "ethela"), nil
}

// Open loads the state file in dir, or starts empty when none exists.
func Open(dir string) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	s := &Store{path: filepath.Join(dir, fileName)}
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read state: %w", err)
	}
	if err := json.Unmarshal(data, &s.st); err != nil {
		return nil, fmt.Errorf("decode state %s: %w", s.path, err)
	}
	return s, nil
}

// Path is the location of the state file.
func (s *Store) Path() string { return s.path }

// CartSessionID returns the cart session id, creating and persisting one on first use.
func (s *Store) CartSessionID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.CartSessionID != "" {
		return s.st.CartSessionID, nil
	}
	s.st.CartSessionID = uuid.NewString()
	if err := s.saveLocked(); err != nil {
		s.st.CartSessionID = ""
		return "", err
	}
	return s.st.CartSessionID, nil
}

// AddToCart records productID against the cart session and returns the session id.
func (s *Store) AddToCart(productID string) (string, error) {
	id, err := s.CartSessionID()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Cart = append(s.st.Cart, productID)
	if err := s.saveLocked(); err != nil {
		s.st.Cart = s.st.Cart[:len(s.st.Cart)-1]
		return "", err
	}
	return id, nil
}

// Cart lists the product ids added so far.
func (s *Store) Cart() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.st.Cart...)
}

func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.AccessToken
}

// SetAccessToken persists token; an empty token clears it.
func (s *Store) SetAccessToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.st.AccessToken
	s.st.AccessToken = token
	if err := s.saveLocked(); err != nil {
		s.st.AccessToken = prev
		return err
	}
	return nil
}

func (s *Store) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
