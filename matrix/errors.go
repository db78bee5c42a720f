// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// module. Operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors on operations documented as
// unchecked (Swap, SwapLinear) and for invariant violations that would
// corrupt the row·col == len(data) contract.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors validate before allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a coordinate or linear index is outside
	// the valid bounds of the matrix it was applied to. Public accessors
	// (At/Ref/Set) return this, never panic. Access views also return it
	// when a strategy maps a virtual coordinate to no physical element.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRagged indicates that row slices of differing lengths were given
	// where a rectangular layout is required.
	ErrRagged = errors.New("matrix: rows must have the same length")

	// ErrSizeMismatch indicates that a flat data slice does not contain
	// exactly rows*cols elements.
	ErrSizeMismatch = errors.New("matrix: data length does not match shape")
)
