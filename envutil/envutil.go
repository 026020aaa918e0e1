// Package envutil reads typed configuration from environment variables.
//
// Every accessor returns a Reader, which carries the key, whether the
// variable was present, the parsed value and any parse error. Options layer
// defaults and validation on top:
//
//	limit := envutil.Int[int64]("TOFU_LEDGER_MAX_LEASES",
//		envutil.Default[int64](0),
//		envutil.Validate(nonNegative),
//	).ValueOrElse(0)
package envutil

import (
	"log/slog"
	"os"

	"github.com/amp-labs/tofu/optional"
	"github.com/amp-labs/tofu/xform"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return NewReader(key, ok, nil, val)
}

// NewReader returns a Reader for the given raw data, for callers that source
// values from somewhere other than the process environment. A non-nil err
// takes precedence over value.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	rdr := Reader[T]{key: key, err: err}

	switch {
	case err != nil:
		rdr.raw = value
	case present:
		rdr.value = optional.Some(value)
	}

	return rdr
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), xform.Bool), opts)
}

func Int[I xform.Intish](key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(key), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

// SlogLevel reads one of "debug", "info", "warn" or "error".
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(get(key), xform.TrimString), xform.SlogLevel), opts)
}
