// Package recordstore is the in-memory, ordered collection of records that the views
// read from. Every mutation is written through to a kv.Store as the full JSON array.
package recordstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"actlog/internal/kv"
	"actlog/internal/record"
)

// Record is satisfied by record.Activity and record.Task.
type Record[T any] interface {
	RecordID() int64
	WithID(id int64) T
}

// Draft is satisfied by record.ActivityDraft and record.TaskDraft.
type Draft[T any] interface {
	Validate() error
	Apply(base T) T
}

// NotFoundError is returned when a mutation targets an id that is not in the collection.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record not found: %d", e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Store holds records newest first. It is not safe for concurrent use.
type Store[T Record[T], D Draft[T]] struct {
	kv  kv.Store
	key string
	ids *record.IDSource

	items     []T
	dirty     bool
	observers []func([]T)
}

// New returns an empty store bound to key. Call Load to hydrate it. A nil ids gets a
// fresh record.IDSource.
func New[T Record[T], D Draft[T]](s kv.Store, key string, ids *record.IDSource) *Store[T, D] {
	if ids == nil {
		ids = record.NewIDSource()
	}
	return &Store[T, D]{kv: s, key: key, ids: ids}
}

// OnChange registers fn to run after every mutation with the current records.
func (s *Store[T, D]) OnChange(fn func([]T)) {
	s.observers = append(s.observers, fn)
}

// Load replaces the in-memory collection with the persisted one. A missing key yields an
// empty collection; unreadable or malformed data is logged and also yields an empty one.
func (s *Store[T, D]) Load() []T {
	s.items = nil
	s.dirty = false

	raw, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			log.Printf("recordstore: read %s: %v", s.key, err)
		}
		return s.Records()
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("recordstore: decode %s, starting empty: %v", s.key, err)
		return s.Records()
	}
	for _, it := range items {
		s.ids.Observe(it.RecordID())
	}
	s.items = items
	return s.Records()
}

// Records returns a copy of the collection, newest first.
func (s *Store[T, D]) Records() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T, D]) Len() int { return len(s.items) }

func (s *Store[T, D]) Get(id int64) (T, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Add validates draft, assigns a new id and prepends the record.
func (s *Store[T, D]) Add(draft D) (T, error) {
	var zero T
	if err := draft.Validate(); err != nil {
		return zero, err
	}
	rec := draft.Apply(zero.WithID(s.ids.Next()))
	s.items = append([]T{rec}, s.items...)
	return rec, s.changed()
}

// Update applies draft over the record with id, keeping its position.
func (s *Store[T, D]) Update(id int64, draft D) (T, error) {
	var zero T
	i := s.index(id)
	if i < 0 {
		return zero, &NotFoundError{ID: id}
	}
	if err := draft.Validate(); err != nil {
		return zero, err
	}
	rec := draft.Apply(s.items[i]).WithID(id)
	s.items[i] = rec
	return rec, s.changed()
}

// Patch replaces the record with id by fn(record). fn cannot change the id.
func (s *Store[T, D]) Patch(id int64, fn func(T) T) (T, error) {
	var zero T
	i := s.index(id)
	if i < 0 {
		return zero, &NotFoundError{ID: id}
	}
	rec := fn(s.items[i]).WithID(id)
	s.items[i] = rec
	return rec, s.changed()
}

// Delete removes the record with id. A missing id is a NotFoundError, not a no-op.
func (s *Store[T, D]) Delete(id int64) error {
	i := s.index(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return s.changed()
}

// Clear empties the collection and removes the persisted key.
func (s *Store[T, D]) Clear() error {
	s.items = nil
	s.notify()
	if err := s.kv.Delete(s.key); err != nil {
		s.dirty = true
		return &kv.PersistenceError{Key: s.key, Op: "delete", Err: err}
	}
	s.dirty = false
	return nil
}

// Dirty reports whether the last write-through failed, leaving the persisted copy stale.
func (s *Store[T, D]) Dirty() bool { return s.dirty }

// Flush writes the current collection again. It is how callers retry after a
// PersistenceError.
func (s *Store[T, D]) Flush() error {
	if len(s.items) == 0 {
		if err := s.kv.Delete(s.key); err != nil {
			return &kv.PersistenceError{Key: s.key, Op: "delete", Err: err}
		}
		s.dirty = false
		return nil
	}
	return s.persist()
}

func (s *Store[T, D]) index(id int64) int {
	for i, it := range s.items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T, D]) changed() error {
	s.notify()
	return s.persist()
}

func (s *Store[T, D]) notify() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Records()
	for _, fn := range s.observers {
		fn(snap)
	}
}

func (s *Store[T, D]) persist() error {
	items := s.items
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		s.dirty = true
		return &kv.PersistenceError{Key: s.key, Op: "set", Err: err}
	}
	if err := s.kv.Set(s.key, string(b)); err != nil {
		s.dirty = true
		return &kv.PersistenceError{Key: s.key, Op: "set", Err: err}
	}
	s.dirty = false
	return nil
}
