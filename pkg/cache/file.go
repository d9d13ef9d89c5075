package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores each entry as one file in a directory, named by its
// key. Keys come from [Key] and are hex strings, so they are always safe
// file names; anything else is rejected.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating the directory
// if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	return &FileCache{dir: dir}, nil
}

// Get reads the entry for key. A missing or unreadable entry is a miss.
func (c *FileCache) Get(key string) ([]byte, bool, error) {
	path, err := c.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set writes the entry for key with 0644 permissions.
func (c *FileCache) Set(key string, data []byte) error {
	path, err := c.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Delete removes the entry for key if it exists.
func (c *FileCache) Delete(key string) error {
	path, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (c *FileCache) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\.") {
		return "", fmt.Errorf("invalid cache key %q", key)
	}
	return filepath.Join(c.dir, key), nil
}

var _ Cache = (*FileCache)(nil)
