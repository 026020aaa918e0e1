// Package view provides the records the algorithms operate on.
//
// A view pairs a payload with the one extra field a family of algorithms
// needs: Sortable carries the element's original position, Searchable carries
// the key that search matches, and Comparable carries nothing more. Views
// reference payloads; they never own memory, so erasing the variant.Value a
// view was built from invalidates the view.
package view

import (
	"fmt"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/variant"
)

// Element is anything the sort algorithms can order. They order by Payload.
type Element interface {
	Payload() variant.Payload
}

// Keyed is an Element the search algorithms can match. They match the search
// key against Lookup.
type Keyed interface {
	Element

	Lookup() variant.Payload
}

var (
	_ Keyed = Comparable{}
	_ Keyed = Sortable{}
	_ Keyed = Searchable{}
)

// Comparable is a bare payload.
type Comparable struct {
	Data variant.Payload
}

func (c Comparable) Payload() variant.Payload { return c.Data }

// Lookup is the payload itself.
func (c Comparable) Lookup() variant.Payload { return c.Data }

func (c Comparable) String() string {
	return render(c.Data)
}

// Sortable is a payload tagged with the position it had before sorting.
type Sortable struct {
	Data  variant.Payload
	Index int
}

func (s Sortable) Payload() variant.Payload { return s.Data }

// Lookup is the payload itself.
func (s Sortable) Lookup() variant.Payload { return s.Data }

func (s Sortable) String() string {
	return fmt.Sprintf("%s@%d", render(s.Data), s.Index)
}

// Searchable is a payload found through a separate key. Sorts order it by
// Data while searches match Key, so a slice meant for binary search must be
// ordered by key first, for example with algo.SortByKey.
type Searchable struct {
	Data variant.Payload
	Key  *variant.Value
}

func (s Searchable) Payload() variant.Payload { return s.Data }

// Lookup is the payload of the key. It is nil when the key is absent.
func (s Searchable) Lookup() variant.Payload { return variant.Get(s.Key) }

// SearchKey returns the key value itself.
func (s Searchable) SearchKey() *variant.Value { return s.Key }

func (s Searchable) String() string {
	return fmt.Sprintf("%s: %s", s.Key, render(s.Data))
}

func render(p variant.Payload) string {
	if p == nil {
		return "<nil>"
	}

	return p.String()
}

// ComparablesOf builds a Comparable view of each value.
func ComparablesOf(values []*variant.Value) []Comparable {
	out := make([]Comparable, len(values))
	for i, v := range values {
		out[i] = Comparable{Data: variant.Get(v)}
	}

	return out
}

// SortablesOf builds a Sortable view of each value, indexed by position.
func SortablesOf(values []*variant.Value) []Sortable {
	out := make([]Sortable, len(values))
	for i, v := range values {
		out[i] = Sortable{Data: variant.Get(v), Index: i}
	}

	return out
}

// SearchablesOf pairs keys[i] with values[i]. The slices must have the same
// length, else errors.ErrBadRange.
func SearchablesOf(keys, values []*variant.Value) ([]Searchable, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys for %d values", errors.ErrBadRange, len(keys), len(values))
	}

	out := make([]Searchable, len(values))
	for i, v := range values {
		out[i] = Searchable{Data: variant.Get(v), Key: keys[i]}
	}

	return out, nil
}

// Payloads returns the payload of every element of array.
func Payloads[E Element](array []E) []variant.Payload {
	out := make([]variant.Payload, len(array))
	for i, e := range array {
		out[i] = e.Payload()
	}

	return out
}

// Indexes returns the original positions recorded in array.
func Indexes(array []Sortable) []int {
	out := make([]int, len(array))
	for i, s := range array {
		out[i] = s.Index
	}

	return out
}
