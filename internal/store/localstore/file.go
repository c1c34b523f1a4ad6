package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// File is a JSON-backed Storage. Single file, human-readable, portable.
// The whole object is loaded once by Open and rewritten on every change.
type File struct {
	mu    sync.RWMutex
	path  string
	items map[string]string
}

// Open loads the store at path. A missing file is an empty store; so is a
// file that does not parse, which is logged and overwritten on the next write.
func Open(path string) (*File, error) {
	f := &File{path: path, items: map[string]string{}}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(b) == 0 {
		return f, nil
	}
	var items map[string]string
	if err := json.Unmarshal(b, &items); err != nil {
		log.Printf("localstore: ignoring unreadable %s: %v", path, err)
		return f, nil
	}
	if items != nil {
		f.items = items
	}
	return f, nil
}

func (f *File) GetItem(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.items[key]
	return v, ok
}

func (f *File) SetItem(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.items[key]
	f.items[key] = value
	if err := f.saveLocked(); err != nil {
		if had {
			f.items[key] = prev
		} else {
			delete(f.items, key)
		}
		return err
	}
	return nil
}

func (f *File) RemoveItem(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.items[key]
	if !had {
		return nil
	}
	delete(f.items, key)
	if err := f.saveLocked(); err != nil {
		f.items[key] = prev
		return err
	}
	return nil
}

func (f *File) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return sortedKeys(f.items)
}

// saveLocked writes to a sibling temp file and renames it over the target
// so a crash mid-write leaves the previous contents intact.
func (f *File) saveLocked() error {
	b, err := json.MarshalIndent(f.items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
