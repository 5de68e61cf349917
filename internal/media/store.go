// Package media stores uploaded files and prepares images and CVs for storage.
package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidKey      = errors.New("invalid storage key")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
	ErrTooManyPages    = errors.New("document has too many pages")
)

// Store persists blobs addressed by slash-separated keys.
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// FileStore implements Store on the local filesystem. The router serves
// basePath back under the public storage URL.
type FileStore struct {
	basePath string
}

// NewFileStore resolves basePath and makes sure it exists.
func NewFileStore(basePath string) (*FileStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base_path required")
	}
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, fmt.Errorf("create base_path: %w", err)
	}
	return &FileStore{basePath: absPath}, nil
}

// BasePath is the absolute directory holding the files.
func (f *FileStore) BasePath() string {
	return f.basePath
}

// Save writes data atomically through a temp file and rename.
func (f *FileStore) Save(ctx context.Context, key string, data []byte) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Delete removes the file; a missing file is not an error.
func (f *FileStore) Delete(ctx context.Context, key string) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("FileStore: failed to remove %s: %v", key, err)
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (f *FileStore) fullPath(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") || filepath.IsAbs(key) {
		return "", ErrInvalidKey
	}
	path := filepath.Join(f.basePath, filepath.FromSlash(key))
	if !strings.HasPrefix(path, f.basePath+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return path, nil
}
