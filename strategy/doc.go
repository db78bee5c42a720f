// Package strategy provides the concrete strategy catalog and the
// transform engine that realizes strategies as data movement.
//
// The strategy package provides:
//
//   - The catalog: Identity, Transpose, RotateR, RotateL, FlipH, FlipV,
//     Reverse, ShiftFront, ShiftBack, Submatrix, Reshape and AccessMap.
//     Every catalog entry implements access.Strategy, so each one can
//     drive a zero-copy view; none of them ever reads element values.
//   - Set, an ordered composition of strategies that itself implements
//     access.Strategy. A Set behaves exactly like the equivalent chain
//     of nested views, resolved without building the chain.
//   - The transform engine: Permutable (the capability an in-place
//     permutation needs), InPlacer (implemented by the pure-permutation
//     catalog entries), and Transform / Materialize, which realize a
//     strategy as a rearranged matrix — in place when possible, into
//     fresh storage otherwise.
//   - Sort, an in-place selection sort over row-major order.
//
// Access and transform agree: for any catalog strategy s and matrix m,
// reading Transform(m, s) element-by-element equals reading a view of m
// through s. In-place transforms cost O(size) swaps and O(1) extra
// space, except the rectangular transpose which tracks visited cycle
// positions.
package strategy
