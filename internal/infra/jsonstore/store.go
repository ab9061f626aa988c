// Package jsonstore provides a JSON file-based implementation of KeyValueStore.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/docwin/internal/domain"
)

// storeData represents the JSON file structure.
// Values are stored as strings, the same way browser local storage keeps them.
type storeData struct {
	Items map[string]string `json:"items"`
	Meta  meta              `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	Version int `json:"version"`
}

const currentVersion = 1

// Store implements domain.KeyValueStore using a single JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var (
		value []byte
		ok    bool
	)
	err := s.withLock(func(data *storeData) error {
		raw, found := data.Items[key]
		if !found {
			return nil
		}
		ok = true
		value = []byte(raw)
		return nil
	})
	return value, ok, err
}

// Set replaces the value stored under key.
func (s *Store) Set(key string, value []byte) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Items[key] = string(value)
		return nil
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		// A corrupted file is replaced rather than blocking every write
		if !errors.Is(err, ErrCorrupted) {
			return err
		}
		data = &storeData{Items: make(map[string]string)}
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the store file. A missing file reads as an empty store.
// A file that is not a valid store is reported as corrupted.
func (s *Store) read() (*storeData, error) {
	data := &storeData{
		Items: make(map[string]string),
		Meta:  meta{Version: currentVersion},
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if err := json.Unmarshal(content, data); err != nil {
		return nil, errors.Join(ErrCorrupted, fmt.Errorf("parse store file: %w", err))
	}
	if data.Items == nil {
		data.Items = make(map[string]string)
	}

	return data, nil
}

func (s *Store) write(data *storeData) error {
	data.Meta.Version = currentVersion
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// ErrCorrupted is returned when the store file cannot be parsed.
var ErrCorrupted = errors.New("json store file is corrupted")

// Ensure Store implements KeyValueStore.
var _ domain.KeyValueStore = (*Store)(nil)
