package variant

import (
	"math"
	"strconv"
	"strings"
)

// Payload is the data held by a Value. The concrete types below are the only
// implementations.
type Payload interface {
	Kind() Kind
	String() string

	payload()
}

type (
	// Integer is a signed 64-bit integer payload.
	Integer int64

	// Double is a double-precision floating point payload.
	Double float64

	// String is a string payload. Ordering is by bytes.
	String string

	// Char is a single character payload, ordered by code point.
	Char rune

	// Boolean is a boolean payload; false orders before true.
	Boolean bool

	// Array is a sequence of values. A nil Array carries no element count and
	// is rejected by Create; use Array{} for an empty array.
	Array []*Value

	// Null is the payload of KindNull.
	Null struct{}

	// Invalid is the payload of KindInvalid.
	Invalid struct{}

	// Unknown is the payload of KindUnknown.
	Unknown struct{}
)

func (Integer) Kind() Kind { return KindInteger }
func (Double) Kind() Kind  { return KindDouble }
func (String) Kind() Kind  { return KindString }
func (Char) Kind() Kind    { return KindChar }
func (Boolean) Kind() Kind { return KindBoolean }
func (Array) Kind() Kind   { return KindArray }
func (Null) Kind() Kind    { return KindNull }
func (Invalid) Kind() Kind { return KindInvalid }
func (Unknown) Kind() Kind { return KindUnknown }

func (Integer) payload() {}
func (Double) payload()  {}
func (String) payload()  {}
func (Char) payload()    {}
func (Boolean) payload() {}
func (Array) payload()   {}
func (Null) payload()    {}
func (Invalid) payload() {}
func (Unknown) payload() {}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (d Double) String() string {
	f := float64(d)

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

func (s String) String() string {
	return strconv.Quote(string(s))
}

func (c Char) String() string {
	return strconv.QuoteRune(rune(c))
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

func (a Array) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(v.String())
	}

	sb.WriteByte(']')

	return sb.String()
}

func (Null) String() string    { return "null" }
func (Invalid) String() string { return "invalid" }
func (Unknown) String() string { return "unknown" }

// Empty returns the payload a nil-payload Create uses for kinds that carry no
// data: Null, Invalid and Unknown. The second result is false for every other
// kind.
func Empty(kind Kind) (Payload, bool) {
	switch kind {
	case KindNull:
		return Null{}, true
	case KindInvalid:
		return Invalid{}, true
	case KindUnknown:
		return Unknown{}, true
	default:
		return nil, false
	}
}
