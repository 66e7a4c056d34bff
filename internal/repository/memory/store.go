package memory

import (
	"context"
	"sort"
	"sync"

	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
)

// FilterFunc selects items during List
type FilterFunc[T any] func(ctx context.Context, item T) bool

// SortFunc orders items during List
type SortFunc[T any] func(i, j T) bool

// Store is a generic, mutex guarded key/value store. Callers own copying:
// whatever goes in or comes out is shared with the map. Errors carry no
// hints; typed stores add the user facing message.
type Store[K comparable, T any] struct {
	mu    sync.RWMutex
	items map[K]T
}

// NewStore creates an empty Store
func NewStore[K comparable, T any]() *Store[K, T] {
	return &Store[K, T]{
		items: make(map[K]T),
	}
}

// CreateFunc adds the item returned by build, failing when id is taken. build
// runs under the write lock and only once the id is known to be free, so
// anything it consumes is consumed for a stored item.
func (s *Store[K, T]) CreateFunc(_ context.Context, id K, build func() (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewErrorf("item %v already exists", id).
			Mark(ierr.ErrAlreadyExists)
	}

	item, err := build()
	if err != nil {
		return err
	}

	s.items[id] = item
	return nil
}

// Get retrieves an item by id
func (s *Store[K, T]) Get(_ context.Context, id K) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item, exists := s.items[id]; exists {
		return item, nil
	}

	var zero T
	return zero, ierr.NewErrorf("item %v not found", id).
		Mark(ierr.ErrNotFound)
}

// List returns the items accepted by filterFn, ordered by sortFn. Nil
// functions accept everything and leave map order.
func (s *Store[K, T]) List(ctx context.Context, filterFn FilterFunc[T], sortFn SortFunc[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if filterFn == nil || filterFn(ctx, item) {
			result = append(result, item)
		}
	}

	if sortFn != nil {
		sort.Slice(result, func(i, j int) bool {
			return sortFn(result[i], result[j])
		})
	}

	return result
}

// Count returns the number of stored items
func (s *Store[K, T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Mutate replaces the item stored under id with fn's result. The read, fn and
// the write happen under one lock, so concurrent mutations of the same id
// are applied one after another. Nothing is stored when fn fails.
func (s *Store[K, T]) Mutate(_ context.Context, id K, fn func(item T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	item, exists := s.items[id]
	if !exists {
		return zero, ierr.NewErrorf("item %v not found", id).
			Mark(ierr.ErrNotFound)
	}

	updated, err := fn(item)
	if err != nil {
		return zero, err
	}

	s.items[id] = updated
	return updated, nil
}

// Clear removes all items from the store
func (s *Store[K, T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[K]T)
}
