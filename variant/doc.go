// Package variant implements a tagged value that holds exactly one of a
// closed set of kinds: integer, double, string, char, boolean, array, null,
// invalid or unknown.
//
// # Payloads
//
// A Payload is a sealed sum type with one concrete Go type per Kind. Readers
// type-switch on it, so a payload can never be read through the wrong kind:
//
//	switch p := v.Payload().(type) {
//	case variant.Integer:
//	    total += int64(p)
//	case variant.String:
//	    names = append(names, string(p))
//	}
//
// # Ownership
//
// A Value holding a String or Array payload owns that payload's memory. The
// ownership is represented by a ledger.Lease, so every Create and Copy must be
// paired with exactly one Erase. Copy makes a deep copy with its own lease.
// Set makes a shallow copy that shares the lease: erasing both the source and
// the destination is a double release, which the ledger reports.
//
// # Ordering
//
// Compare defines a total order within a kind and refuses to order values of
// different kinds (errors.ErrMismatch). Arrays compare element-wise,
// lexicographically, with a shorter prefix ordering first.
//
// Values are not safe for concurrent mutation.
package variant
