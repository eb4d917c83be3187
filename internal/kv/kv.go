// Package kv is the persistent key-value store the application mirrors its state into.
//
// Keys and values are opaque strings. Every backend is synchronous: a Set or Delete has
// completed (or failed) by the time it returns, so a later Get, even from a new process,
// observes it.
package kv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKeyNotFound is returned by Get when the key has never been set or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store closed")

// Store is implemented by every backend.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) (string, error)
	// Set stores val under key, replacing any previous value.
	Set(key, val string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Close releases the backend's resources.
	Close() error
}

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ParseBackend normalizes a backend name. The empty string selects BackendJSON.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendJSON:
		return BackendJSON, nil
	case BackendSQLite:
		return BackendSQLite, nil
	case BackendMemory:
		return BackendMemory, nil
	default:
		return "", fmt.Errorf("unknown backend: %s (want json|sqlite|memory)", s)
	}
}

// Open returns the backend rooted at dir. dir is ignored by BackendMemory.
func Open(backend Backend, dir string) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return OpenFile(dir)
	case BackendSQLite:
		return OpenSQLite(dir)
	case BackendMemory:
		return NewMemory(nil), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}

// PersistenceError is returned by callers that mirror in-memory state into a Store when the
// write-through fails. The in-memory change has already been applied when it is returned.
type PersistenceError struct {
	Key string
	Op  string // "set" or "delete"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s (%s): %v", e.Key, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
