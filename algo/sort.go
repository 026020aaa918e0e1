package algo

import (
	"slices"

	"github.com/amp-labs/tofu/variant"
	"github.com/amp-labs/tofu/view"
)

// SortInsertion sorts the first n elements of array into non-decreasing order.
// It is stable: equal elements keep their relative order.
func SortInsertion[E view.Element](array []E, n int, opts ...Option) error {
	return insertion(begin("insertion", n, opts), array, n, func(e E) variant.Payload { return e.Payload() })
}

// SortByKey stably sorts the first n elements of array by their lookup key,
// the order SearchBinary expects. For view.Searchable this is the key, not
// the data.
func SortByKey[E view.Keyed](array []E, n int, opts ...Option) error {
	return insertion(begin("insertion_by_key", n, opts), array, n, func(e E) variant.Payload { return e.Lookup() })
}

func insertion[E any](r *run, array []E, n int, field func(E) variant.Payload) error {
	if err := checkRange(len(array), n); err != nil {
		return r.finish(err)
	}

	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			o, err := r.compareAt(field(array[j-1]), field(array[j]), j-1, j)
			if err != nil {
				return r.finish(err)
			}

			if o != Greater {
				break
			}

			array[j-1], array[j] = array[j], array[j-1]
		}
	}

	return r.finish(nil)
}

// SortSelection sorts the first n elements of array into non-decreasing order
// by repeatedly selecting the minimum of the unsorted suffix. It is not
// stable.
func SortSelection[E view.Element](array []E, n int, opts ...Option) error {
	r := begin("selection", n, opts)

	if err := checkRange(len(array), n); err != nil {
		return r.finish(err)
	}

	for i := range n - 1 {
		least := i

		for j := i + 1; j < n; j++ {
			o, err := r.compareAt(array[j].Payload(), array[least].Payload(), j, least)
			if err != nil {
				return r.finish(err)
			}

			if o == Less {
				least = j
			}
		}

		if least != i {
			array[i], array[least] = array[least], array[i]
		}
	}

	return r.finish(nil)
}

// Reverse reverses the order of the first n elements of array.
func Reverse[E any](array []E, n int, opts ...Option) error {
	r := begin("reverse", n, opts)

	if err := checkRange(len(array), n); err != nil {
		return r.finish(err)
	}

	slices.Reverse(array[:n])

	return r.finish(nil)
}

// IsSorted reports whether the first n elements of array are in
// non-decreasing order.
func IsSorted[E view.Element](array []E, n int, opts ...Option) (bool, error) {
	r := begin("is_sorted", n, opts)

	if err := checkRange(len(array), n); err != nil {
		return false, r.finish(err)
	}

	for i := 1; i < n; i++ {
		o, err := r.compareAt(array[i-1].Payload(), array[i].Payload(), i-1, i)
		if err != nil {
			return false, r.finish(err)
		}

		if o == Greater {
			return false, r.finish(nil)
		}
	}

	return true, r.finish(nil)
}
