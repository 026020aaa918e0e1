// Package errors defines the error taxonomy shared by every tofu package.
//
// Each failure class is a sentinel error, so callers match with errors.Is.
// Every sentinel also carries a stable numeric Code for callers that need to
// surface a compact status (logs, exit codes, wire formats).
package errors

import "errors"

var (
	// ErrMismatch reports a kind incompatibility: comparing values of different
	// kinds, or a payload whose shape does not match the requested kind.
	ErrMismatch = errors.New("kind mismatch")

	// ErrBadRange reports an index or length outside the backing array.
	ErrBadRange = errors.New("index out of range")

	// ErrNullptr reports that a required value reference is absent.
	ErrNullptr = errors.New("required value is nil")

	// ErrBadMalloc reports that the ledger refused an allocation.
	ErrBadMalloc = errors.New("allocation refused")

	// ErrUnknown is an unclassified failure.
	ErrUnknown = errors.New("unknown error")

	// ErrNotFound reports a search miss where an explicit error channel is wanted
	// instead of a sentinel index.
	ErrNotFound = errors.New("not found")
)

// Code is the numeric form of an error class.
type Code int

const (
	Success   Code = 0
	Mismatch  Code = -1
	BadRange  Code = -2
	Nullptr   Code = -3
	BadMalloc Code = -4
	Unknown   Code = -5
	NotFound  Code = -6
)

// String returns the constant-style name of the code.
func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case Mismatch:
		return "MISMATCH"
	case BadRange:
		return "BAD_RANGE"
	case Nullptr:
		return "NULLPTR"
	case BadMalloc:
		return "BAD_MALLOC"
	case NotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Message returns a human-readable description of the code.
func (c Code) Message() string {
	switch c {
	case Success:
		return "No error"
	case Mismatch:
		return "Kind mismatch"
	case BadRange:
		return "Index or length out of range"
	case Nullptr:
		return "Required value is nil"
	case BadMalloc:
		return "Allocation refused"
	case NotFound:
		return "Not found"
	default:
		return "Unknown error"
	}
}

// Err returns the sentinel error for the code, or nil for Success.
func (c Code) Err() error {
	switch c {
	case Success:
		return nil
	case Mismatch:
		return ErrMismatch
	case BadRange:
		return ErrBadRange
	case Nullptr:
		return ErrNullptr
	case BadMalloc:
		return ErrBadMalloc
	case NotFound:
		return ErrNotFound
	default:
		return ErrUnknown
	}
}

// CodeOf classifies err. A nil error is Success, and anything outside the
// taxonomy is Unknown.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrMismatch):
		return Mismatch
	case errors.Is(err, ErrBadRange):
		return BadRange
	case errors.Is(err, ErrNullptr):
		return Nullptr
	case errors.Is(err, ErrBadMalloc):
		return BadMalloc
	case errors.Is(err, ErrNotFound):
		return NotFound
	default:
		return Unknown
	}
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text) //nolint:err113
}

// Is reports whether any error in err's tree matches target. It lets callers
// use this package in place of the standard library one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
