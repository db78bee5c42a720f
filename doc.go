// Package matrixable turns any rectangular, row-major collection into a
// matrix — and lets you transpose, rotate, flip, shift, reshape and slice
// it without copying a single element.
//
// 🚀 What is matrixable?
//
//	A small, pure-Go library built around one idea: a matrix is just a
//	capability set, and every structural transformation is a coordinate
//	remapping. It brings together:
//		• Capability contracts: Matrix, Mutable, DimensionSwapper — plug in
//		  any backing container that can count rows and serve elements
//		• Coordinate arithmetic: linear index ↔ (row, col) conversions with
//		  checked and unchecked flavors
//		• Access views: zero-copy, read-only or read-write windows that
//		  remap coordinates through a strategy, nestable to any depth
//		• Transforms: in-place permutation algorithms (cycle-following
//		  transpose, triple-reverse shifts) that realize the same mappings
//		  by moving data instead of wrapping it
//		• Iteration: row, column, diagonal and linear iterators over any
//		  Matrix, views included
//
// ✨ Why choose matrixable?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - View/transform symmetry – what you read through an access view is
//     exactly what a transform materializes, always
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – implement Strategy once and get views, composition and
//     materialization for free
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   — capability interfaces, coordinate arithmetic, Dense storage
//	access/   — the Strategy contract, View/MutView wrappers, Observer
//	strategy/ — the strategy catalog, ordered Set, in-place transforms
//	iterate/  — row/column/diagonal/linear iterators and enumerators
//
// Quick ASCII example:
//
//	    0 1 2        6 3 0
//	    3 4 5   ─►   7 4 1      (RotateR, in place, no allocation)
//	    6 7 8        8 5 2
//
// Dive into the package docs for the full strategy catalog and the exact
// composition rules for chained views.
//
//	go get github.com/tcheufa/matrixable
package matrixable
