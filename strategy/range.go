// Package strategy: axis ranges for Submatrix selection.

package strategy

import "fmt"

// Range selects a span of indices along one axis. Bounds are clamped to
// the axis's actual extent when the range is resolved against a shape,
// so an oversized range silently shrinks instead of erroring; a range
// that clips to nothing selects zero indices.
//
// The zero Range selects nothing; use the constructors.
type Range struct {
	from int
	to   int
	open bool // no upper bound
}

// Span selects the half-open interval [from, to).
func Span(from, to int) Range { return Range{from: from, to: to} }

// From selects every index at or after from.
func From(from int) Range { return Range{from: from, open: true} }

// To selects every index before to.
func To(to int) Range { return Range{to: to} }

// All selects the whole axis.
func All() Range { return Range{open: true} }

// clip resolves the range against an axis of length n, returning the
// selected half-open interval [lo, hi) with both bounds clamped to
// [0, n]. hi == lo means the selection is empty.
func (r Range) clip(n int) (lo, hi int) {
	lo = r.from
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}

	hi = n
	if !r.open && r.to < n {
		hi = r.to
	}
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// String renders the range for debugging.
func (r Range) String() string {
	if r.open {
		return fmt.Sprintf("[%d..]", r.from)
	}

	return fmt.Sprintf("[%d..%d)", r.from, r.to)
}
