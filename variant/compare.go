package variant

import (
	"cmp"
	"fmt"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/tofu/compare"
	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/logger"
)

type Ordering = compare.Ordering

const (
	Less    = compare.Less
	Equal   = compare.Equal
	Greater = compare.Greater
)

// Comparator orders two payloads. Compare and CompareNatural are the two
// comparators this package provides.
type Comparator func(a, b Payload) (Ordering, error)

var (
	_ compare.Ordered[*Value]    = (*Value)(nil)
	_ compare.Comparable[*Value] = (*Value)(nil)
)

// Compare orders two payloads of the same kind.
//
//   - Integer, Double: numeric. NaN orders before every number and equals NaN.
//   - String: lexicographic by bytes.
//   - Char: by code point.
//   - Boolean: false before true.
//   - Array: element-wise, lexicographic; a proper prefix orders first.
//   - Null, Invalid, Unknown: equal to any payload of the same kind.
//
// Payloads of different kinds fail with errors.ErrMismatch; no coercion is
// ever attempted. A nil payload fails with errors.ErrNullptr.
func Compare(a, b Payload) (Ordering, error) {
	return comparePayloads(a, b, strings.Compare)
}

// CompareNatural is Compare with strings in natural order, so "item2" orders
// before "item10".
func CompareNatural(a, b Payload) (Ordering, error) {
	return comparePayloads(a, b, naturalCompare)
}

func naturalCompare(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		// Natural order ties distinct strings such as "a01" and "a1".
		return strings.Compare(a, b)
	}
}

// CompareValues orders the payloads of two values with Compare.
func CompareValues(a, b *Value) (Ordering, error) {
	if a == nil || b == nil {
		return Equal, fmt.Errorf("%w: compare needs two values", errors.ErrNullptr)
	}

	return Compare(a.payload, b.payload)
}

func comparePayloads(a, b Payload, strcmp func(a, b string) int) (Ordering, error) {
	if a == nil || b == nil {
		return Equal, fmt.Errorf("%w: compare needs two payloads", errors.ErrNullptr)
	}

	if a.Kind() != b.Kind() {
		return Equal, fmt.Errorf("%w: cannot order %s against %s", errors.ErrMismatch, a.Kind(), b.Kind())
	}

	switch a := a.(type) {
	case Integer:
		return compare.FromInt(cmp.Compare(a, b.(Integer))), nil //nolint:forcetypeassert
	case Double:
		return compare.FromInt(cmp.Compare(a, b.(Double))), nil //nolint:forcetypeassert
	case String:
		return compare.FromInt(strcmp(string(a), string(b.(String)))), nil //nolint:forcetypeassert
	case Char:
		return compare.FromInt(cmp.Compare(a, b.(Char))), nil //nolint:forcetypeassert
	case Boolean:
		return compare.FromLess(bool(a), bool(b.(Boolean)), func(x, y bool) bool { //nolint:forcetypeassert
			return !x && y
		}), nil
	case Array:
		return compareArrays(a, b.(Array), strcmp) //nolint:forcetypeassert
	default:
		return Equal, nil
	}
}

func compareArrays(a, b Array, strcmp func(a, b string) int) (Ordering, error) {
	for i := range min(len(a), len(b)) {
		if a[i] == nil || b[i] == nil {
			return Equal, logger.AnnotateError(
				fmt.Errorf("%w: array element %d", errors.ErrNullptr, i), "index", i)
		}

		o, err := comparePayloads(a[i].payload, b[i].payload, strcmp)
		if err != nil {
			return Equal, logger.AnnotateError(fmt.Errorf("array element %d: %w", i, err), "index", i)
		}

		if o != Equal {
			return o, nil
		}
	}

	return compare.FromInt(cmp.Compare(len(a), len(b))), nil
}
