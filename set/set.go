// Package set provides a hash set of values that define their own hashing
// and equality, such as *variant.Value.
package set

import (
	"errors"
	"iter"

	"github.com/amp-labs/tofu/compare"
	"github.com/amp-labs/tofu/hashing"
)

// ErrHashCollision is returned when a hashing collision is detected.
// Specifically this refers to two different (non-equal) objects
// that have the same hashing value.
var ErrHashCollision = errors.New("hashing collision")

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// A Set is a collection of unique elements. Uniqueness is
// determined by the HashFunc provided when the Set is created,
// as well as how the object has implemented the Hashable and
// Comparable interfaces. Entries come back in the order they
// were first added.
type Set[T Collectable[T]] struct {
	hash    hashing.HashFunc
	index   map[string]int
	entries []T
}

// NewSet creates a new Set with the provided hash function.
func NewSet[T Collectable[T]](hash hashing.HashFunc) *Set[T] {
	return &Set[T]{
		hash:  hash,
		index: make(map[string]int),
	}
}

// AddAll adds multiple elements to the set, stopping at the first error.
func (s *Set[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if _, err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

// Add adds an element and reports whether it was new. Adding an element
// equal to one already present is a no-op. A different element with the same
// hash fails with ErrHashCollision.
func (s *Set[T]) Add(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	if i, ok := s.index[hashVal]; ok {
		if compare.Equals(s.entries[i], element) {
			return false, nil
		}

		return false, ErrHashCollision
	}

	s.index[hashVal] = len(s.entries)
	s.entries = append(s.entries, element)

	return true, nil
}

// Remove deletes the element if present.
func (s *Set[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	i, ok := s.index[hashVal]
	if !ok || !compare.Equals(s.entries[i], element) {
		return nil
	}

	delete(s.index, hashVal)
	s.entries = append(s.entries[:i], s.entries[i+1:]...)

	for key, j := range s.index {
		if j > i {
			s.index[key] = j - 1
		}
	}

	return nil
}

// Contains checks if an element exists in the set.
func (s *Set[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	i, ok := s.index[hashVal]
	if !ok {
		return false, nil
	}

	if !compare.Equals(s.entries[i], element) {
		return true, ErrHashCollision
	}

	return true, nil
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return len(s.entries)
}

// Entries returns the elements in insertion order.
func (s *Set[T]) Entries() []T {
	out := make([]T, len(s.entries))
	copy(out, s.entries)

	return out
}

// Seq ranges over the elements in insertion order.
func (s *Set[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.entries {
			if !yield(e) {
				return
			}
		}
	}
}
