// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Ordering is the outcome of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Ordered is implemented by types with a fallible total order. Compare
// returns an error when the two operands have no defined order between them.
type Ordered[T any] interface {
	Compare(other T) (Ordering, error)
}

// FromInt converts a conventional negative/zero/positive comparison result
// (as returned by cmp.Compare or strings.Compare) into an Ordering.
func FromInt(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// FromLess derives an Ordering from a strict less-than predicate.
func FromLess[T any](a, b T, less func(a, b T) bool) Ordering {
	switch {
	case less(a, b):
		return Less
	case less(b, a):
		return Greater
	default:
		return Equal
	}
}

// Reverse flips Less and Greater.
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}
