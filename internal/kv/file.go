package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON object file. Every write
// rewrites the whole file through a temp file and rename.
type File struct {
	path      string
	mu        sync.Mutex
	values    map[string]string
	recovered string
	closed    bool
}

// OpenFile opens or creates a JSON file store at path.
// A file that cannot be parsed is moved aside to path + ".corrupt" and the
// store starts empty; Recovered reports the backup location.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(data) == 0 {
		return f, nil
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		backup := path + ".corrupt"
		if err := os.Rename(path, backup); err != nil {
			return nil, fmt.Errorf("move corrupt store file: %w", err)
		}
		f.values = make(map[string]string)
		f.recovered = backup
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	return f, nil
}

// Recovered returns the path a corrupt store file was moved to on open,
// or "" if the file was readable.
func (f *File) Recovered() string {
	return f.recovered
}

func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", false, ErrClosed
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	return f.SetMany(map[string]string{key: value})
}

func (f *File) SetMany(values map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	next := make(map[string]string, len(f.values)+len(values))
	for k, v := range f.values {
		next[k] = v
	}
	for k, v := range values {
		next[k] = v
	}
	if err := f.write(next); err != nil {
		return err
	}
	f.values = next
	return nil
}

// write saves values with 2-space indentation and a trailing newline.
func (f *File) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close store file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
