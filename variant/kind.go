package variant

import (
	"fmt"
	"strings"

	"github.com/amp-labs/tofu/errors"
	"golang.org/x/text/cases"
)

// Kind identifies which payload a Value holds.
type Kind int

const (
	KindInteger Kind = iota
	KindDouble
	KindString
	KindChar
	KindBoolean
	KindArray
	KindNull
	KindInvalid
	KindUnknown
)

var kindNames = [...]string{ //nolint:gochecknoglobals
	KindInteger: "integer",
	KindDouble:  "double",
	KindString:  "string",
	KindChar:    "char",
	KindBoolean: "boolean",
	KindArray:   "array",
	KindNull:    "null",
	KindInvalid: "invalid",
	KindUnknown: "unknown",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindInteger && k <= KindUnknown
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		kinds = append(kinds, Kind(k))
	}

	return kinds
}

// ParseKind returns the kind with the given name, ignoring case.
func ParseKind(name string) (Kind, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))

	for k, n := range kindNames {
		if n == folded {
			return Kind(k), nil
		}
	}

	return KindUnknown, fmt.Errorf("%w: no kind named %q", errors.ErrMismatch, name)
}
