package repo

import (
	"errors"
)

var (
	ErrorInvalidID   = errors.New("invalid identity")
	ErrorDuplicateID = errors.New("duplicate identity")
)

// Record is an entity the store can own: it exposes its identity and produces
// detached copies of itself. WithIdentity and Clone return values, so stored
// state never aliases what callers hold.
type Record[T any] interface {
	Identity() int64
	WithIdentity(id int64) T
	Clone() T
}

// Store is an ID-keyed in-memory collection. Identity assignment belongs to
// the store: every created record gets the next strictly increasing positive
// id. Reads hand out clones, mutations replace the backing slice as a whole.
type Store[T Record[T]] struct {
	items  []T
	nextID int64
}

// New builds a store over an optional initial collection. Items with
// non-positive or repeated ids fail construction.
func New[T Record[T]](initial []T) (*Store[T], error) {
	seen := make(map[int64]struct{}, len(initial))
	items := make([]T, 0, len(initial))
	var maxID int64

	for _, item := range initial {
		id := item.Identity()
		if id <= 0 {
			return nil, ErrorInvalidID
		}
		if _, dup := seen[id]; dup {
			return nil, ErrorDuplicateID
		}
		seen[id] = struct{}{}
		if id > maxID {
			maxID = id
		}
		items = append(items, item.Clone())
	}

	return &Store[T]{items: items, nextID: maxID + 1}, nil
}

// All returns clones of every item in insertion order.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

func (s *Store[T]) Get(id int64) (T, bool) {
	for _, item := range s.items {
		if item.Identity() == id {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Create assigns the next id, stores a clone, and returns a clone of what was
// stored. It never fails: ids are owned by the store.
func (s *Store[T]) Create(item T) T {
	stored := item.WithIdentity(s.nextID).Clone()
	s.nextID++
	s.items = append(s.items[:len(s.items):len(s.items)], stored)
	return stored.Clone()
}

// Update replaces the item with the given id by apply(clone). The second
// return is false when no item has that id. Field-level merge semantics live
// in the caller-supplied apply.
func (s *Store[T]) Update(id int64, apply func(T) T) (T, bool) {
	for i, item := range s.items {
		if item.Identity() != id {
			continue
		}
		updated := apply(item.Clone()).WithIdentity(id).Clone()
		next := make([]T, len(s.items))
		copy(next, s.items)
		next[i] = updated
		s.items = next
		return updated.Clone(), true
	}
	var zero T
	return zero, false
}

// Delete reports whether an item was removed. Absence is not an error.
func (s *Store[T]) Delete(id int64) bool {
	for i, item := range s.items {
		if item.Identity() != id {
			continue
		}
		next := make([]T, 0, len(s.items)-1)
		next = append(next, s.items[:i]...)
		next = append(next, s.items[i+1:]...)
		s.items = next
		return true
	}
	return false
}

func (s *Store[T]) Exists(id int64) bool {
	_, ok := s.Get(id)
	return ok
}

func (s *Store[T]) Count() int {
	return len(s.items)
}

// Query returns clones of the items matching pred, preserving insertion order.
func (s *Store[T]) Query(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range s.items {
		if pred(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}
