package variant

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/hashing"
)

var _ hashing.Hashable = (*Value)(nil)

// UpdateHash writes a canonical encoding of v into h. Values that Compare
// Equal hash identically, including 0.0 and -0.0, and every NaN.
func (v *Value) UpdateHash(h hash.Hash) error {
	if v == nil || v.payload == nil {
		return fmt.Errorf("%w: cannot hash an absent value", errors.ErrNullptr)
	}

	return hashPayload(h, v.payload)
}

// Hash returns the hex digest of v under fn. A nil fn uses hashing.XXH3.
func Hash(v *Value, fn hashing.HashFunc) (string, error) {
	if fn == nil {
		fn = hashing.XXH3
	}

	return fn(v)
}

func hashPayload(h hash.Hash, p Payload) error {
	var buf [9]byte

	buf[0] = byte(p.Kind())

	switch p := p.(type) {
	case Integer:
		binary.BigEndian.PutUint64(buf[1:], uint64(p))
	case Double:
		binary.BigEndian.PutUint64(buf[1:], canonicalBits(float64(p)))
	case Char:
		binary.BigEndian.PutUint64(buf[1:], uint64(p))
	case Boolean:
		if p {
			buf[1] = 1
		}
	case String:
		binary.BigEndian.PutUint64(buf[1:], uint64(len(p)))

		if _, err := h.Write(buf[:]); err != nil {
			return err
		}

		_, err := h.Write([]byte(p))

		return err
	case Array:
		binary.BigEndian.PutUint64(buf[1:], uint64(len(p)))

		if _, err := h.Write(buf[:]); err != nil {
			return err
		}

		for i, elem := range p {
			if err := elem.UpdateHash(h); err != nil {
				return fmt.Errorf("array element %d: %w", i, err)
			}
		}

		return nil
	}

	_, err := h.Write(buf[:])

	return err
}

func canonicalBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	case f == 0:
		return 0
	default:
		return math.Float64bits(f)
	}
}
