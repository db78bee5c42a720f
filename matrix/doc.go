// Package matrix defines the capability contracts and coordinate
// arithmetic that the rest of matrixable is built on.
//
// The matrix package provides:
//
//   - The Matrix and Mutable interfaces — the minimal capability set a
//     backing container must expose (row/column counts, element access,
//     element swaps) for views, iterators and transforms to operate on it.
//   - Coordinate arithmetic: total linear-index ↔ (row, col) conversions
//     for row-major layouts, plus checked variants for bounds-aware code.
//   - Derived read operations (Size, Shape, IsSquare, DiagLen, ...) that
//     are expressible purely in terms of the capability set, independent
//     of storage layout.
//   - Dense, a generic flat-slice row-major container implementing every
//     contract in this package.
//
// Everything here is O(1) per call except the whole-matrix helpers
// (Equal, IsSymmetric, SwapRows/SwapCols), which are O(r·c) or O(axis).
//
// See the access and strategy packages for coordinate-remapping views
// and transforms built on these contracts.
package matrix
