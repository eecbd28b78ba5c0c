// Package memory provides a map-backed storage.Gateway for tests,
// examples and the development server.
package memory

import (
	"context"
	"sync"

	"github.com/goliatone/go-dynamicform/pkg/storage"
)

// Store is an in-memory Gateway. Unlike the rest of the core it is safe
// for concurrent use, since the dev server serves it from multiple
// request goroutines.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

var _ storage.Gateway = (*Store)(nil)

// Get returns the stored value or storage.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Put stores a copy of the value.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Len reports the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
