package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skillconnect/models"
)

const (
	identityFileName = "identity.json"
	tokenFileName    = "token"
)

// FileStore persists credentials as two files under a directory, the desktop
// analog of the browser's local storage entries. Files are written with 0600
// since the token is a live credential.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
// An empty dir defaults to ~/.skillconnect.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".skillconnect")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) LoadIdentity() (*models.Identity, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, identityFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read identity file: %w", err)
	}
	var identity models.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal identity: %w", err)
	}
	return &identity, nil
}

func (s *FileStore) LoadToken() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(identity models.Identity, token string) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}
	// Token first: a load that sees the token but no identity is treated as
	// logged out, while the reverse would leave an identity with no credential.
	if err := writeFileAtomic(filepath.Join(s.dir, tokenFileName), []byte(token)); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(s.dir, identityFileName), data); err != nil {
		return fmt.Errorf("failed to write identity file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	for _, name := range []string{identityFileName, tokenFileName} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// cannot leave a truncated entry behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
