// Package store provides durable client-side storage for values the request
// pipeline consults on every call, such as the persisted token and the
// selected warehouse.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/wms-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrPathRequired = errors.New("store path is required")
)

// MemoryStore keeps values in memory.
type MemoryStore struct {
	mutex  sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates a memory store seeded with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}

	return &MemoryStore{values: copied}
}

// Get implements wms.LocalStore.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]

	return value, ok
}

// Set implements wms.LocalStore.
func (s *MemoryStore) Set(key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[key] = value

	return nil
}

// Delete implements wms.LocalStore.
func (s *MemoryStore) Delete(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.values, key)

	return nil
}

// FileStore persists values to a YAML file.
type FileStore struct {
	path   string
	mutex  sync.RWMutex
	values map[string]string
}

// NewFileStore opens the store at path. A missing file is an empty store.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrPathRequired
	}

	store := &FileStore{
		path:   filepath.Clean(path),
		values: make(map[string]string),
	}

	err := store.Reload()
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Reload re-reads the backing file.
func (s *FileStore) Reload() error {
	values := make(map[string]string)

	// #nosec G304 -- path is chosen by the operator
	data, err := os.ReadFile(s.path)

	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("reading store file: %w", err)
	default:
		err = yaml.Unmarshal(data, &values)
		if err != nil {
			return fmt.Errorf("parsing store file: %w", err)
		}
	}

	s.mutex.Lock()
	s.values = values
	s.mutex.Unlock()

	return nil
}

// Get implements wms.LocalStore.
func (s *FileStore) Get(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]

	return value, ok
}

// Set implements wms.LocalStore.
func (s *FileStore) Set(key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[key] = value

	return s.save()
}

// Delete implements wms.LocalStore.
func (s *FileStore) Delete(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.values, key)

	return s.save()
}

// Values returns a copy of every stored value.
func (s *FileStore) Values() map[string]string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make(map[string]string, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}

	return out
}

// save writes the file through a temporary file and a rename; callers hold
// the write lock.
func (s *FileStore) save() error {
	err := os.MkdirAll(filepath.Dir(s.path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	tmp := s.path + ".tmp"

	err = os.WriteFile(tmp, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}

	err = os.Rename(tmp, s.path)
	if err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}

	return nil
}

// Watch reloads the store whenever the backing file changes on disk, for
// example after a login from another terminal. It returns once the watcher is
// running; watching stops when ctx is done. onReload, when set, receives the
// result of every reload.
func (s *FileStore) Watch(ctx context.Context, onReload func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(s.path), constants.ConfigDirPerm)
	if err != nil {
		_ = watcher.Close()

		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// The directory is watched because saves replace the file.
	err = watcher.Add(filepath.Dir(s.path))
	if err != nil {
		_ = watcher.Close()

		return fmt.Errorf("watching store directory: %w", err)
	}

	go func() {
		defer func() { _ = watcher.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != s.path {
					continue
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}

				reloadErr := s.Reload()
				if onReload != nil {
					onReload(reloadErr)
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}

				if onReload != nil {
					onReload(fmt.Errorf("file watcher: %w", watchErr))
				}
			}
		}
	}()

	return nil
}
