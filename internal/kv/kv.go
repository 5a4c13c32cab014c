// Package kv provides the string key-value stores that hold persisted state.
package kv

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Store is a string key-value store. Writes are synchronous and durable
// once they return.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
	// SetMany stores all values in one write.
	SetMany(values map[string]string) error
	// Close releases the store. Further calls return ErrClosed.
	Close() error
}

// Kinds of store accepted by Open.
const (
	KindMemory = "memory"
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// Open opens a store of the given kind at path.
func Open(kind, path string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindFile:
		return OpenFile(path)
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
