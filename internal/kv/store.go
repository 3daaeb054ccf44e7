// Package kv implements a small file-backed key-value store.
//
// All entries live in a single JSON object file inside the store directory.
// Writes go through a temp file plus rename so a crash never leaves a
// half-written store, and read-modify-write cycles hold an exclusive flock
// on a sibling lock file.
package kv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Store manages the key-value file with locking.
type Store struct {
	dir string
}

// NewStore creates a store using the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) storePath() string {
	return filepath.Join(s.dir, "store.json")
}

func (s *Store) lockPath() string {
	return filepath.Join(s.dir, "store.lock")
}

// load reads all entries. A missing file yields an empty map.
func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.storePath())
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal store: %w", err)
	}
	return entries, nil
}

// save writes all entries to disk atomically.
func (s *Store) save(entries map[string]json.RawMessage) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if existing, err := os.ReadFile(s.storePath()); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read store file: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(s.storePath())+".tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := os.Rename(name, s.storePath()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename store file: %w", err)
	}

	return nil
}

// Get returns the raw value stored under key, and whether the key exists.
func (s *Store) Get(key string) ([]byte, bool, error) {
	entries, err := s.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}
	return s.update(func(entries map[string]json.RawMessage) {
		entries[key] = json.RawMessage(append([]byte(nil), value...))
	})
}

// Delete removes key from the store. Removing an absent key is not an error.
func (s *Store) Delete(key string) error {
	return s.update(func(entries map[string]json.RawMessage) {
		delete(entries, key)
	})
}

// update atomically reads, modifies, and writes the store with file locking.
func (s *Store) update(fn func(entries map[string]json.RawMessage)) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	entries, err := s.load()
	if err != nil {
		return err
	}

	fn(entries)

	return s.save(entries)
}
