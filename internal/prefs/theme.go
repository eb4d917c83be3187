// Package prefs holds the persisted dark/light preference.
package prefs

import (
	"errors"
	"log"

	"actlog/internal/kv"
)

const (
	persistedTrue  = "true"
	persistedFalse = "false"
)

// Theme mirrors a single boolean into a kv.Store. False (light) is the default.
type Theme struct {
	kv    kv.Store
	key   string
	dark  bool
	apply []func(dark bool)
}

func NewTheme(s kv.Store, key string) *Theme {
	return &Theme{kv: s, key: key}
}

// OnApply registers a presentation hook. It runs on Load and after every Toggle.
func (t *Theme) OnApply(fn func(dark bool)) {
	t.apply = append(t.apply, fn)
}

// Load reads the flag. Anything other than the exact string "true" reads as false.
func (t *Theme) Load() bool {
	v, err := t.kv.Get(t.key)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		log.Printf("prefs: read %s: %v", t.key, err)
	}
	t.dark = err == nil && v == persistedTrue
	t.run()
	return t.dark
}

func (t *Theme) Dark() bool { return t.dark }

// Toggle flips the flag and persists it. On a write failure the new value is kept in
// memory and a *kv.PersistenceError is returned alongside it.
func (t *Theme) Toggle() (bool, error) {
	t.dark = !t.dark
	t.run()
	v := persistedFalse
	if t.dark {
		v = persistedTrue
	}
	if err := t.kv.Set(t.key, v); err != nil {
		return t.dark, &kv.PersistenceError{Key: t.key, Op: "set", Err: err}
	}
	return t.dark, nil
}

func (t *Theme) run() {
	for _, fn := range t.apply {
		fn(t.dark)
	}
}
