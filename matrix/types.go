// Package matrix: capability contracts shared by the whole module.
// This file intentionally contains ONLY the interfaces and the Coord
// value type; coordinate arithmetic lives in coords.go, derived
// operations in methods.go, and the concrete container in dense.go.

package matrix

// Coord is a zero-based (row, column) position in a matrix.
// A Coord is valid for a shape (R, C) iff 0 <= Row < R and 0 <= Col < C.
type Coord struct {
	Row, Col int
}

// Shape is the dimension-only capability: anything that can report a row
// and column count. Strategies resolve coordinate mappings against a
// Shape alone, which is what makes them composable over a stand-in proxy
// without touching real data.
type Shape interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
}

// Matrix is the minimal read contract: a Shape that can serve elements
// by coordinate. Every derived operation, iterator and access view in
// this module is expressed purely in terms of this interface.
type Matrix[T any] interface {
	Shape

	// At retrieves the element at (row, col).
	// Returns ErrOutOfRange if the coordinate is invalid.
	// Complexity: O(1) for direct storage; strategy views add the cost
	// of their coordinate mapping.
	At(row, col int) (T, error)
}

// Mutable extends Matrix with write access and element exchange.
//
// Swap and SwapLinear are the single trusted primitives used by every
// in-place transform algorithm; they are documented as unchecked and
// panic on invalid positions (programmer error), so that permutation
// loops carry no per-swap error plumbing.
type Mutable[T any] interface {
	Matrix[T]

	// Ref returns a pointer to the element at (row, col), allowing
	// callers to modify it in place.
	// Returns ErrOutOfRange if the coordinate is invalid.
	Ref(row, col int) (*T, error)

	// Set assigns v at (row, col).
	// Returns ErrOutOfRange if the coordinate is invalid.
	Set(row, col int, v T) error

	// Swap exchanges the elements at a and b. A no-op when a == b.
	// Panics if either coordinate is invalid.
	Swap(a, b Coord)

	// SwapLinear exchanges the elements at row-major linear positions
	// a and b. A no-op when a == b. Panics if either index is invalid.
	SwapLinear(a, b int)
}

// DimensionSwapper is the extra capability the in-place rectangular
// transpose needs: after permuting the flat storage it must reinterpret
// the same buffer with row and column counts exchanged, without moving
// data again.
type DimensionSwapper interface {
	// SwapDimensions exchanges the reported row and column counts.
	// After the call Rows() returns the old Cols() and vice versa.
	SwapDimensions()
}
