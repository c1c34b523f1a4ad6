// Package localstore is a string key/value store scoped to one user profile.
// It plays the part a browser's local storage plays for a web page: every
// dashboard widget keeps its state under its own key and rewrites the value
// wholesale on change.
package localstore

import (
	"sort"
	"sync"
)

// Storage is the subset of local-storage behavior the dashboard relies on.
type Storage interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Keys() []string
}

// Memory is an in-process Storage. Nothing survives the process.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemory() *Memory {
	return &Memory{items: map[string]string{}}
}

func (m *Memory) GetItem(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *Memory) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *Memory) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Keys returns the stored keys in lexical order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.items)
}

func sortedKeys(items map[string]string) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
