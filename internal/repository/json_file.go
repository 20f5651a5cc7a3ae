package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileDB is the data directory holding the JSON array files.
type FileDB struct {
	dir string
}

// OpenFileDB creates dir if needed.
func OpenFileDB(dir string) (*FileDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repository: mkdir %s: %w", dir, err)
	}
	return &FileDB{dir: dir}, nil
}

// Ping checks that the data directory is still there.
func (d *FileDB) Ping(_ context.Context) error {
	info, err := os.Stat(d.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("repository: %s is not a directory", d.dir)
	}
	return nil
}

// Path returns the location of name inside the data directory.
func (d *FileDB) Path(name string) string {
	return filepath.Join(d.dir, name)
}

// jsonFile is a JSON array on disk with a single writer. Every mutation is a
// locked read-modify-write, and the new content replaces the old file via
// rename so a crash never leaves a half-written array behind.
type jsonFile[T any] struct {
	mu   sync.Mutex
	path string
}

func openJSONFile[T any](path string) (*jsonFile[T], error) {
	f := &jsonFile[T]{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := f.store([]T{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("repository: stat %s: %w", path, err)
	}
	return f, nil
}

// load must be called with mu held.
func (f *jsonFile[T]) load() ([]T, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: read %s: %w", f.path, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("repository: decode %s: %w", f.path, err)
	}
	return items, nil
}

// store must be called with mu held (or before the file is shared).
func (f *jsonFile[T]) store(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("repository: encode %s: %w", f.path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("repository: create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("repository: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("repository: close temp: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("repository: replace %s: %w", f.path, err)
	}
	return nil
}

// read returns a snapshot of the array.
func (f *jsonFile[T]) read() ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// update runs fn over the current array and persists what it returns.
// If fn fails nothing is written.
func (f *jsonFile[T]) update(fn func([]T) ([]T, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.load()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return f.store(next)
}
