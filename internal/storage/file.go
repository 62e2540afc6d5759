package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each collection in its own JSON file under a directory.
// Useful for plain-text backups and for syncing the contact list through
// file-sharing tools.
type FileStore struct {
	dir string
}

// OpenFile opens a file-backed store rooted at dir, creating it if needed
func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load decodes the collection stored under key into v. A missing file or
// undecodable content degrades to an empty collection.
func (s *FileStore) Load(key string, v interface{}) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, v)
}

// Save encodes v and writes it to the collection file
func (s *FileStore) Save(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	return nil
}

// Remove deletes the collection file for key
func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file store
func (s *FileStore) Close() error {
	return nil
}

// Register the file backend
func init() {
	Register("file", func(path string) (Store, error) {
		return OpenFile(path)
	})
}
