package algo

import (
	"fmt"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/logger"
	"github.com/amp-labs/tofu/variant"
	"github.com/amp-labs/tofu/view"
)

// NotFound is the index SearchLinear and SearchBinary return when the key is
// absent. It is never a valid index.
const NotFound = -1

// SearchLinear returns the index of the first of the first n elements whose
// Lookup equals key, or NotFound. An element of a different kind than the key
// fails with errors.ErrMismatch; absence is not an error.
func SearchLinear[E view.Keyed](array []E, n int, key variant.Payload, opts ...Option) (int, error) {
	r := begin("linear_search", n, opts)

	if err := checkSearch(len(array), n, key); err != nil {
		return NotFound, r.finish(err)
	}

	for i := range n {
		o, err := r.compare(array[i].Lookup(), key)
		if err != nil {
			return NotFound, r.finish(probeError(err, i))
		}

		if o == Equal {
			return i, r.finish(nil)
		}
	}

	return NotFound, r.finish(nil)
}

// SearchBinary returns the index of an element among the first n whose
// Lookup equals key, or NotFound. The elements must already be in ascending
// order of Lookup under the same comparator; this is not verified, and the
// result for unsorted input is unspecified.
func SearchBinary[E view.Keyed](array []E, n int, key variant.Payload, opts ...Option) (int, error) {
	r := begin("binary_search", n, opts)

	if err := checkSearch(len(array), n, key); err != nil {
		return NotFound, r.finish(err)
	}

	lo, hi := 0, n-1

	for lo <= hi {
		mid := lo + (hi-lo)/2 //nolint:mnd

		o, err := r.compare(array[mid].Lookup(), key)
		if err != nil {
			return NotFound, r.finish(probeError(err, mid))
		}

		switch o {
		case Less:
			lo = mid + 1
		case Greater:
			hi = mid - 1
		default:
			return mid, r.finish(nil)
		}
	}

	return NotFound, r.finish(nil)
}

// FindLinear is SearchLinear with absence reported as errors.ErrNotFound.
func FindLinear[E view.Keyed](array []E, n int, key variant.Payload, opts ...Option) (int, error) {
	return found(SearchLinear(array, n, key, opts...))
}

// FindBinary is SearchBinary with absence reported as errors.ErrNotFound.
func FindBinary[E view.Keyed](array []E, n int, key variant.Payload, opts ...Option) (int, error) {
	return found(SearchBinary(array, n, key, opts...))
}

func found(i int, err error) (int, error) {
	if err != nil {
		return NotFound, err
	}

	if i == NotFound {
		return NotFound, errors.ErrNotFound
	}

	return i, nil
}

func checkSearch(size, n int, key variant.Payload) error {
	if err := checkRange(size, n); err != nil {
		return err
	}

	if key == nil {
		return fmt.Errorf("%w: search key", errors.ErrNullptr)
	}

	return nil
}

func probeError(err error, i int) error {
	return logger.AnnotateError(fmt.Errorf("probing element %d: %w", i, err), "index", i)
}
