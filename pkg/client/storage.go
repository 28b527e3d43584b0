package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenStorage persists the auth token across sessions. CLI callers use a
// file under the user config directory; short-lived programs keep it in
// memory.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryTokenStorage holds the token in memory only. Useful for tests and
// short-lived programs.
type MemoryTokenStorage struct {
	token string
}

func NewMemoryTokenStorage() *MemoryTokenStorage { return &MemoryTokenStorage{} }

func (m *MemoryTokenStorage) Load() (string, error) { return m.token, nil }

func (m *MemoryTokenStorage) Save(token string) error {
	m.token = token
	return nil
}

func (m *MemoryTokenStorage) Clear() error {
	m.token = ""
	return nil
}

// FileTokenStorage keeps the token in a single file with user-only
// permissions.
type FileTokenStorage struct {
	path string
}

func NewFileTokenStorage(path string) *FileTokenStorage {
	return &FileTokenStorage{path: path}
}

// DefaultFileTokenStorage stores the token under the user config dir,
// e.g. ~/.config/devconnect/token.
func DefaultFileTokenStorage() (*FileTokenStorage, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewFileTokenStorage(filepath.Join(dir, "devconnect", "token")), nil
}

func (f *FileTokenStorage) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileTokenStorage) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileTokenStorage) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
