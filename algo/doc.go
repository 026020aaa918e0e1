// Package algo implements sorting and searching over slices of views.
//
// Every entry point works on the first n elements of a caller-provided slice
// and never allocates or frees the slice. An n outside [0, len] fails with
// errors.ErrBadRange. Payloads are ordered with variant.Compare unless
// WithComparator says otherwise, and a comparison failure (for example
// errors.ErrMismatch between elements of different kinds) stops the
// algorithm and is returned unchanged in class.
//
//	items := view.SortablesOf(values)
//	if err := algo.SortInsertion(items, len(items)); err != nil {
//	    return err
//	}
//
//	i, err := algo.SearchBinary(items, len(items), variant.Integer(4))
//	if err != nil {
//	    return err
//	}
//
//	if i == algo.NotFound {
//	    // absent
//	}
//
// The algorithms are not safe for concurrent use on the same slice.
package algo
