// Package storage persists uploaded media files and resolves them back to
// servable paths.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaStore abstracts where normalized media bytes live. The rest of the
// application only ever sees opaque file names.
type MediaStore interface {
	// Save writes data under a fresh name with the given extension and
	// returns that name.
	Save(data []byte, ext string) (string, error)
	// Resolve maps a stored file name to a path on disk, rejecting names
	// that escape the store.
	Resolve(fileName string) (string, error)
	Remove(fileName string) error
}

// DiskStore keeps media as flat files under a single directory, served
// statically by the HTTP layer.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: upload directory not configured")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("storage: create upload directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(data []byte, ext string) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		return "", fmt.Errorf("storage: missing file extension")
	}
	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o600); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	return name, nil
}

func (s *DiskStore) Resolve(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return "", fmt.Errorf("storage: invalid file name %q", fileName)
	}
	path := filepath.Join(s.dir, fileName)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *DiskStore) Remove(fileName string) error {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return fmt.Errorf("storage: invalid file name %q", fileName)
	}
	return os.Remove(filepath.Join(s.dir, fileName))
}
