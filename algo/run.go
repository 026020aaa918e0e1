package algo

import (
	"fmt"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/logger"
	"github.com/amp-labs/tofu/variant"
)

// run tracks one algorithm call for metrics and logging.
type run struct {
	algorithm   string
	n           int
	opts        *options
	comparisons int
}

func begin(algorithm string, n int, opts []Option) *run {
	return &run{
		algorithm: algorithm,
		n:         n,
		opts:      buildOptions(opts),
	}
}

func (r *run) compare(a, b variant.Payload) (variant.Ordering, error) {
	r.comparisons++

	return r.opts.comparator(a, b)
}

// compareAt compares two elements and annotates a failure with their indexes.
func (r *run) compareAt(a, b variant.Payload, i, j int) (variant.Ordering, error) {
	o, err := r.compare(a, b)
	if err != nil {
		return o, logger.AnnotateError(
			fmt.Errorf("comparing elements %d and %d: %w", i, j, err), "left", i, "right", j)
	}

	return o, nil
}

func (r *run) finish(err error) error {
	calls.WithLabelValues(r.algorithm).Inc()
	comparisons.WithLabelValues(r.algorithm).Add(float64(r.comparisons))

	if err != nil {
		err = logger.AnnotateError(err, "algorithm", r.algorithm, "n", r.n)
		failures.WithLabelValues(r.algorithm, errors.CodeOf(err).String()).Inc()
	}

	logger.Get(r.opts.ctx).Debug("algorithm finished",
		"algorithm", r.algorithm,
		"n", r.n,
		"comparisons", r.comparisons,
		"error", err)

	return err
}

// checkRange validates that the first n elements of a slice of length size
// exist.
func checkRange(size, n int) error {
	if n < 0 || n > size {
		return fmt.Errorf("%w: n is %d for a slice of %d elements", errors.ErrBadRange, n, size)
	}

	return nil
}
