// Package iterator provides a cursor over the first n elements of a slice.
//
// An Iterator references the slice; it never owns or copies it. Only At
// validates its position. Moving a cursor past either end is allowed and makes
// it invalid, and reading an invalid cursor yields the zero element.
package iterator

import (
	"fmt"
	"iter"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/optional"
	"github.com/amp-labs/tofu/variant"
)

// keyed is implemented by elements that carry a search key, such as
// view.Searchable.
type keyed interface {
	SearchKey() *variant.Value
}

// Iterator is a cursor over array[:n].
type Iterator[E any] struct {
	array []E
	n     int
	pos   int
}

// Start returns a cursor on the first element.
func Start[E any](array []E, n int) *Iterator[E] {
	return &Iterator[E]{array: array, n: n}
}

// End returns a cursor on the last element, n-1. For an empty range it is
// positioned at 0 and is not valid.
func End[E any](array []E, n int) *Iterator[E] {
	return &Iterator[E]{array: array, n: n, pos: max(n-1, 0)}
}

// At returns a cursor on element pos. It fails with errors.ErrBadRange unless
// 0 <= pos < n <= len(array).
func At[E any](array []E, n, pos int) (*Iterator[E], error) {
	if n > len(array) {
		return nil, fmt.Errorf("%w: n is %d for a slice of %d elements", errors.ErrBadRange, n, len(array))
	}

	if pos < 0 || pos >= n {
		return nil, fmt.Errorf("%w: position %d outside [0, %d)", errors.ErrBadRange, pos, n)
	}

	return &Iterator[E]{array: array, n: n, pos: pos}, nil
}

// Index returns the cursor position.
func (it *Iterator[E]) Index() int {
	return it.pos
}

// Len returns n.
func (it *Iterator[E]) Len() int {
	return it.n
}

// Valid reports whether the cursor is on an element.
func (it *Iterator[E]) Valid() bool {
	return it.pos >= 0 && it.pos < it.n && it.pos < len(it.array)
}

// Value returns the current element, or the zero element when the cursor is
// not valid.
func (it *Iterator[E]) Value() E {
	if !it.Valid() {
		var zero E

		return zero
	}

	return it.array[it.pos]
}

// Key returns the search key of the current element. It is empty when the
// cursor is not valid or the element type carries no key.
func (it *Iterator[E]) Key() optional.Value[*variant.Value] {
	if !it.Valid() {
		return optional.None[*variant.Value]()
	}

	if k, ok := any(it.array[it.pos]).(keyed); ok {
		return optional.Some(k.SearchKey())
	}

	return optional.None[*variant.Value]()
}

// Next advances the cursor and reports whether it is still valid.
func (it *Iterator[E]) Next() bool {
	it.pos++

	return it.Valid()
}

// Prev moves the cursor back and reports whether it is still valid.
func (it *Iterator[E]) Prev() bool {
	it.pos--

	return it.Valid()
}

// All yields the position and element of every valid position from the
// cursor to the end of the range. It does not move the cursor.
func (it *Iterator[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := max(it.pos, 0); i < it.n && i < len(it.array); i++ {
			if !yield(i, it.array[i]) {
				return
			}
		}
	}
}

// Backward yields every valid position from the cursor down to the start of
// the range. It does not move the cursor.
func (it *Iterator[E]) Backward() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := min(it.pos, it.n-1, len(it.array)-1); i >= 0; i-- {
			if !yield(i, it.array[i]) {
				return
			}
		}
	}
}

func (it *Iterator[E]) String() string {
	return fmt.Sprintf("iterator(%d/%d)", it.pos, it.n)
}
