package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const fileName = "store.json"

// File keeps every key in one JSON object on disk and rewrites it on each change.
type File struct {
	Path string

	mu     sync.Mutex
	data   map[string]string
	closed bool
}

// OpenFile loads dir/store.json, creating dir if needed. A missing file is an empty store.
// An unreadable or malformed file is logged, moved aside, and also treated as empty.
func OpenFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f := &File{
		Path: filepath.Join(dir, fileName),
		data: map[string]string{},
	}

	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, err
	}
	err = json.Unmarshal(b, &f.data)
	if err == nil && f.data == nil {
		// A literal null decodes cleanly into a nil map.
		err = errors.New("top-level value is null")
	}
	if err != nil {
		log.Printf("kv: could not decode %s, starting empty: %v", f.Path, err)
		f.data = map[string]string{}
		if err := os.Rename(f.Path, f.Path+".corrupt"); err != nil {
			log.Printf("kv: could not move %s aside: %v", f.Path, err)
		}
	}
	return f, nil
}

func (f *File) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", ErrClosed
	}
	v, ok := f.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (f *File) Set(key, val string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	prev, had := f.data[key]
	f.data[key] = val
	if err := f.save(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	prev, had := f.data[key]
	if !had {
		return nil
	}
	delete(f.data, key)
	if err := f.save(); err != nil {
		f.data[key] = prev
		return err
	}
	return nil
}

func (f *File) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

// save writes the whole map through a temp file and a rename, so a crash leaves either
// the old file or the new one. Callers hold f.mu.
func (f *File) save() error {
	b, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", f.Path, err)
	}
	return nil
}
