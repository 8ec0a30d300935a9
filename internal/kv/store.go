// Package kv provides the in-memory key-value stores backing all
// server state, plus a controllable clock for deterministic time.
package kv

import (
	"fmt"
	"sync"
)

// Store is a generic in-memory collection keyed by prefixed IDs.
// All methods are safe for concurrent use.
type Store[T any] struct {
	mu      sync.RWMutex
	prefix  string
	counter int
	items   map[string]T
	order   []string // insertion order, for listing and pagination
}

// New creates an empty Store whose generated IDs carry the given prefix.
func New[T any](prefix string) *Store[T] {
	return &Store[T]{
		prefix: prefix,
		items:  make(map[string]T),
	}
}

// NextID reserves and returns the next generated ID.
func (s *Store[T]) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return fmt.Sprintf("%s_%06d", s.prefix, s.counter)
}

// Get returns the item for id, if present.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

// Set stores the item under id, preserving insertion order for new IDs.
func (s *Store[T]) Set(id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

// Delete removes the item for id and reports whether it existed.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all items in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Len returns the number of stored items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Page is one page of a cursor-based listing.
type Page[T any] struct {
	Data    []T
	HasMore bool
}

// Paginate returns up to limit items after the cursor ID, in insertion order.
// An empty cursor starts from the beginning.
func (s *Store[T]) Paginate(cursor string, limit int) Page[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if cursor != "" {
		for i, id := range s.order {
			if id == cursor {
				start = i + 1
				break
			}
		}
	}

	var page Page[T]
	for i := start; i < len(s.order); i++ {
		if len(page.Data) == limit {
			page.HasMore = true
			break
		}
		page.Data = append(page.Data, s.items[s.order[i]])
	}
	return page
}

// FilterWithIDs returns the IDs and items for which fn reports true,
// in insertion order.
func (s *Store[T]) FilterWithIDs(fn func(id string, v T) bool) ([]string, []T) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	var items []T
	for _, id := range s.order {
		if fn(id, s.items[id]) {
			ids = append(ids, id)
			items = append(items, s.items[id])
		}
	}
	return ids, items
}

// Snapshot returns a copy of the full contents, for serialization.
func (s *Store[T]) Snapshot() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]T, len(s.items))
	for id, v := range s.items {
		out[id] = v
	}
	return out
}

// LoadSnapshot replaces the full contents atomically.
func (s *Store[T]) LoadSnapshot(items map[string]T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T, len(items))
	s.order = s.order[:0]
	for id, v := range items {
		s.items[id] = v
		s.order = append(s.order, id)
	}
}

// Reset clears all items and the ID counter.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
	s.order = nil
	s.counter = 0
}
