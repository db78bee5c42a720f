// Package iterate provides range-over-func iterators for matrices:
// whole-matrix traversal, per-row, per-column and per-diagonal walks,
// coordinate enumeration, and mutable (*T-yielding) variants of each.
//
// All iterators traverse in row-major order (diagonals walk top-left to
// bottom-right within the diagonal) and work against the plain read and
// write contracts, so they apply unchanged to dense matrices, strategy
// views and nested compositions.
//
// Iteration stops at the first element the underlying mapping fails to
// resolve — it never skips a hole and continues. Over a Dense backing
// no element ever fails to resolve; over a view the strategy decides.
//
// Diagonals are indexed from the bottom-left corner (index 0) to the
// top-right corner; index rows-1 is the main diagonal.
package iterate
