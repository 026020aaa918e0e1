package algo

import (
	"context"

	"github.com/amp-labs/tofu/variant"
)

type options struct {
	comparator variant.Comparator
	ctx        context.Context //nolint:containedctx
}

// Option configures a single algorithm call.
type Option func(*options)

// WithComparator orders payloads with c instead of variant.Compare.
func WithComparator(c variant.Comparator) Option {
	return func(o *options) {
		o.comparator = c
	}
}

// WithContext attaches ctx to the call. Its logger (see logger.Get) receives
// a debug record when the call finishes.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		comparator: variant.Compare,
		ctx:        context.Background(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.comparator == nil {
		o.comparator = variant.Compare
	}

	if o.ctx == nil {
		o.ctx = context.Background()
	}

	return o
}
