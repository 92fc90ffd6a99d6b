package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FileStore persists one <key>.json document per key under a data
// directory. Default driver: the closest analog of the dashboard's
// original local storage for a single-user binary.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, def []byte) []byte {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ store: read %q failed, using default: %v", key, err)
		}
		return def
	}
	return raw
}

func (s *FileStore) Save(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}
