// Package session holds the signed-in user's role and token.
//
// The values are persisted by the login flow (outside this program) in a small YAML file
// using the keys userRole and token. This package only reads them.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FileEnv overrides the session file location (for testing).
	FileEnv = "COURSEDECK_SESSION_FILE"
	// DefaultFile is the session file path relative to the user's home.
	DefaultFile = ".coursedeck/session.yaml"
)

// Session is the explicit session context handed to views at construction.
type Session struct {
	Role  Role
	Token string
}

// HasToken reports whether an auth token is available.
func (s Session) HasToken() bool {
	return s.Token != ""
}

// persisted mirrors the on-disk keys.
type persisted struct {
	UserRole string `yaml:"userRole"`
	Token    string `yaml:"token"`
}

// Store reads the persisted session file.
type Store struct {
	path string
}

// NewStore creates a store at $COURSEDECK_SESSION_FILE, or ~/.coursedeck/session.yaml.
func NewStore() (*Store, error) {
	if p := os.Getenv(FileEnv); p != "" {
		return &Store{path: p}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(home, DefaultFile)}, nil
}

// NewStoreAt creates a store reading the given file.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the session file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the session. A missing file is a signed-out learner session, not an error.
func (s *Store) Load() (Session, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{Role: RoleLearner}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session %s: %w", s.path, err)
	}
	var p persisted
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Session{}, fmt.Errorf("parse session %s: %w", s.path, err)
	}
	return Session{Role: ParseRole(p.UserRole), Token: p.Token}, nil
}
