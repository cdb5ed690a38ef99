package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore persists the key space as a single JSON object in one file.
// The whole map is held in memory and flushed on every write, mirroring
// the sequential read-modify-write model of the app.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenFileStore loads (or creates) the store file at path.
// A missing file is treated as an empty store.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, data: make(map[string]string)}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("open store file: %w", err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&fs.data); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}
	return fs, nil
}

// flushLocked writes the full map back to disk. Callers hold fs.mu.
func (fs *FileStore) flushLocked() error {
	f, err := os.Create(fs.path)
	if err != nil {
		return fmt.Errorf("create store file: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fs.data); err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (fs *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	v, ok := fs.data[key]
	return v, ok, nil
}

// Set stores value under key and flushes the file.
func (fs *FileStore) Set(_ context.Context, key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data[key] = value
	return fs.flushLocked()
}

// Delete removes key and flushes the file.
func (fs *FileStore) Delete(_ context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.data[key]; !ok {
		return nil
	}
	delete(fs.data, key)
	return fs.flushLocked()
}

// Keys returns every set key in sorted order.
func (fs *FileStore) Keys(_ context.Context) ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	keys := make([]string, 0, len(fs.data))
	for k := range fs.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
