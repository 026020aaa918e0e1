package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/amp-labs/tofu/optional"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is the outcome of reading one environment variable: the parsed
// value if there is one, or the error that prevented it. A variable that is
// unset and has no default holds neither.
type Reader[A any] struct {
	key   string
	value optional.Value[A]
	err   error

	// raw is the rejected input, kept for error messages.
	raw any
}

// Key returns the key of the environment variable.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the parsed value, or an error if the variable is missing or
// could not be parsed.
func (e Reader[A]) Value() (A, error) { //nolint:ireturn
	value, ok := e.value.Get()

	if e.err != nil {
		return value, fmt.Errorf("%w %s: %w (given value is %v)", ErrBadEnvVar, e.key, e.err, e.raw)
	}

	if !ok {
		return value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return value, nil
}

// ValueOrFatal returns the parsed value, or exits the program.
func (e Reader[A]) ValueOrFatal() A { //nolint:ireturn
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// ValueOrElse returns the parsed value, or fallback. A parse error is logged
// before falling back.
func (e Reader[A]) ValueOrElse(fallback A) A { //nolint:ireturn
	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "value", e.raw, "error", e.err, "fallback", fallback)

		return fallback
	}

	return e.value.GetOrElse(fallback)
}

// HasValue returns true if the variable was set (or defaulted) and parsed.
func (e Reader[A]) HasValue() bool {
	return e.err == nil && e.value.NonEmpty()
}

// HasError returns true if reading the variable failed.
func (e Reader[A]) HasError() bool {
	return e.err != nil
}

func (e Reader[A]) String() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	case e.value.NonEmpty():
		v, _ := e.value.Get()

		return fmt.Sprintf("%s=%v", e.key, v)
	default:
		return e.key + "=<not set>"
	}
}

// WithErrorIfMissing turns an unset variable into err.
func (e Reader[A]) WithErrorIfMissing(err error) Reader[A] { //nolint:ireturn
	if e.value.NonEmpty() || e.err != nil {
		return e
	}

	return Reader[A]{key: e.key, err: err}
}

// WithDefault gives an unset variable the value v.
func (e Reader[A]) WithDefault(v A) Reader[A] { //nolint:ireturn
	if e.value.NonEmpty() || e.err != nil {
		return e
	}

	return Reader[A]{key: e.key, value: optional.Some(v)}
}

// Map returns a new Reader with the value transformed by the given function.
func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] { //nolint:ireturn
	return Map(e, f)
}

// Map returns a new Reader with the value transformed by the given function.
// This can translate types, so it is more flexible than Reader.Map.
// Errors and missing values pass through untouched.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{key: env.key, err: env.err, raw: env.raw}

	value, ok := env.value.Get()
	if !ok || env.err != nil {
		return out
	}

	mapped, err := f(value)
	if err != nil {
		out.err = err
		out.raw = value

		return out
	}

	out.value = optional.Some(mapped)

	return out
}
