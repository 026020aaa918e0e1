package variant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/ledger"
	"github.com/amp-labs/tofu/logger"
)

// slotSize is the number of bytes an array accounts for per element.
const slotSize = int64(strconv.IntSize / 8)

// Value is a payload together with ownership of its memory. The zero Value
// is empty: it holds no payload and reports KindInvalid.
type Value struct {
	payload Payload
	lease   *ledger.Lease
}

type options struct {
	ledger *ledger.Ledger
}

// Option configures Create, New and Copy.
type Option func(*options)

// WithLedger accounts owned memory against l instead of ledger.Default().
func WithLedger(l *ledger.Ledger) Option {
	return func(o *options) {
		o.ledger = l
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	if o.ledger == nil {
		o.ledger = ledger.Default()
	}

	return o
}

// Create returns a new Value of the given kind holding a deep copy of payload.
//
// Null, Invalid and Unknown accept a nil payload. Every other kind fails with
// errors.ErrNullptr for a nil payload. A payload of a different kind, or an
// Array payload without an element count (a nil Array), fails with
// errors.ErrMismatch. A refused ledger acquisition fails with
// errors.ErrBadMalloc. Nothing is leaked on failure.
func Create(kind Kind, payload Payload, opts ...Option) (*Value, error) {
	if payload == nil {
		empty, ok := Empty(kind)
		if !ok {
			return nil, fmt.Errorf("%w: %s value needs a payload", errors.ErrNullptr, kind)
		}

		payload = empty
	}

	if payload.Kind() != kind {
		return nil, fmt.Errorf("%w: %s payload for a %s value", errors.ErrMismatch, payload.Kind(), kind)
	}

	owned, lease, err := own(payload, buildOptions(opts).ledger)
	if err != nil {
		return nil, err
	}

	return &Value{payload: owned, lease: lease}, nil
}

// New is Create with the kind taken from the payload.
func New(payload Payload, opts ...Option) (*Value, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: payload", errors.ErrNullptr)
	}

	return Create(payload.Kind(), payload, opts...)
}

// own returns a private copy of p, together with the lease that owns its
// memory when p is a String or an Array.
func own(p Payload, l *ledger.Ledger) (Payload, *ledger.Lease, error) {
	switch p := p.(type) {
	case nil:
		return nil, nil, fmt.Errorf("%w: value has no payload", errors.ErrNullptr)
	case String:
		lease, err := l.Acquire(int64(len(p)))
		if err != nil {
			return nil, nil, err
		}

		return String(strings.Clone(string(p))), lease, nil
	case Array:
		return ownArray(p, l)
	default:
		return p, nil, nil
	}
}

func ownArray(src Array, l *ledger.Ledger) (Payload, *ledger.Lease, error) {
	if src == nil {
		return nil, nil, fmt.Errorf("%w: array payload without an element count", errors.ErrMismatch)
	}

	for i, elem := range src {
		if elem == nil {
			return nil, nil, logger.AnnotateError(
				fmt.Errorf("%w: array element %d", errors.ErrNullptr, i), "index", i)
		}
	}

	lease, err := l.Acquire(int64(len(src)) * slotSize)
	if err != nil {
		return nil, nil, err
	}

	elems := make(Array, len(src))

	for i, elem := range src {
		payload, elemLease, err := own(elem.payload, l)
		if err != nil {
			for _, done := range elems[:i] {
				Erase(done)
			}

			_ = lease.Release()

			return nil, nil, logger.AnnotateError(fmt.Errorf("array element %d: %w", i, err), "index", i)
		}

		elems[i] = &Value{payload: payload, lease: elemLease}
	}

	return elems, lease, nil
}

// adoptArray wraps freshly built elements in an array Value without copying
// them. The elements become owned by the returned Value.
func adoptArray(elems Array, l *ledger.Ledger) (*Value, error) {
	if elems == nil {
		elems = Array{}
	}

	lease, err := l.Acquire(int64(len(elems)) * slotSize)
	if err != nil {
		return nil, err
	}

	return &Value{payload: elems, lease: lease}, nil
}

// Erase releases the memory v owns, recursively for array elements, and
// leaves v empty. Erase of nil, or of an already erased Value, does nothing.
//
// Erasing a Value that shares its lease through Set with another erased
// Value is a double release. The ledger counts and logs it.
func Erase(v *Value) {
	if v == nil {
		return
	}

	if arr, ok := v.payload.(Array); ok {
		for _, elem := range arr {
			Erase(elem)
		}
	}

	if v.lease != nil {
		// A double release is reported by the ledger itself.
		_ = v.lease.Release()
	}

	v.payload = nil
	v.lease = nil
}

// Copy deep-copies source into dest. Memory dest owned before the call is
// released once the copy has succeeded; on failure dest is left unchanged.
//
// The copy is accounted against the ledger given with WithLedger, else the
// ledger owning source, else ledger.Default().
func Copy(source, dest *Value, opts ...Option) error {
	if source == nil || dest == nil {
		return fmt.Errorf("%w: copy needs a source and a destination", errors.ErrNullptr)
	}

	if source == dest {
		return nil
	}

	if source.lease != nil {
		opts = append([]Option{WithLedger(source.lease.Ledger())}, opts...)
	}

	payload, lease, err := own(source.payload, buildOptions(opts).ledger)
	if err != nil {
		return err
	}

	previous := &Value{payload: dest.payload, lease: dest.lease}

	dest.payload = payload
	dest.lease = lease

	Erase(previous)

	return nil
}

// Clone returns a deep copy of v.
func Clone(v *Value, opts ...Option) (*Value, error) {
	dest := &Value{}
	if err := Copy(v, dest, opts...); err != nil {
		return nil, err
	}

	return dest, nil
}

// Set makes dest a shallow copy of source: both share the same payload and
// the same lease. Only one of them may be erased. Set does nothing if either
// is nil.
func Set(source, dest *Value) {
	if source == nil || dest == nil {
		return
	}

	dest.payload = source.payload
	dest.lease = source.lease
}

// Get returns the payload of v, or nil for a nil or erased Value.
func Get(v *Value) Payload {
	if v == nil {
		return nil
	}

	return v.payload
}

// TypeOf returns the kind of v. A nil or erased Value is KindInvalid.
func TypeOf(v *Value) Kind {
	if v == nil || v.payload == nil {
		return KindInvalid
	}

	return v.payload.Kind()
}

// IsNull reports whether the reference v is absent. It says nothing about
// KindNull: a Value of KindNull is not nil.
func IsNull(v *Value) bool {
	return v == nil
}

// NotNull reports whether the reference v is present.
func NotNull(v *Value) bool {
	return v != nil
}

// Payload returns the payload of v.
func (v *Value) Payload() Payload {
	return Get(v)
}

// Kind returns the kind of v.
func (v *Value) Kind() Kind {
	return TypeOf(v)
}

// Owned reports whether v currently holds a lease on owned memory.
func (v *Value) Owned() bool {
	return v != nil && v.lease != nil && !v.lease.Released()
}

// Compare orders v against other. See the package function Compare.
func (v *Value) Compare(other *Value) (Ordering, error) {
	return CompareValues(v, other)
}

// Equals reports whether v and other are ordered Equal. Values that cannot be
// ordered against each other are not equal.
func (v *Value) Equals(other *Value) bool {
	o, err := CompareValues(v, other)

	return err == nil && o == Equal
}

func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}

	if v.payload == nil {
		return "<erased>"
	}

	return v.payload.String()
}
