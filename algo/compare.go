package algo

import (
	"fmt"

	"github.com/amp-labs/tofu/compare"
	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/view"
)

// The orderings Compare returns.
const (
	Less    = compare.Less
	Equal   = compare.Equal
	Greater = compare.Greater
)

// Compare orders two elements of any view type by their payloads.
func Compare(a, b view.Element, opts ...Option) (compare.Ordering, error) {
	r := begin("compare", 2, opts) //nolint:mnd

	if a == nil || b == nil {
		return Equal, r.finish(fmt.Errorf("%w: compare needs two elements", errors.ErrNullptr))
	}

	o, err := r.compare(a.Payload(), b.Payload())

	return o, r.finish(err)
}
