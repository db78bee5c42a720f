// Package strategy: in-place permutation algorithms.
//
// Permutations rearrange elements without reading them, so the only
// capabilities they need are a shape, a linear swap, and (for the
// shape-transposing strategies) a dimension exchange. Every algorithm
// here works through those three alone.

package strategy

import "github.com/tcheufa/matrixable/matrix"

// Permutable is what an in-place transform operates on: element
// exchange by row-major linear position plus a dimension exchange for
// the strategies whose output shape transposes. matrix.Dense satisfies
// it.
type Permutable interface {
	matrix.Shape
	matrix.DimensionSwapper

	// SwapLinear exchanges the elements at row-major linear positions
	// a and b. A no-op when a == b. Panics if either index is invalid.
	SwapLinear(a, b int)
}

// InPlacer is implemented by the catalog strategies whose effect is a
// pure permutation, realizable without allocating a second matrix.
// Transform prefers this path when a strategy offers it.
type InPlacer interface {
	InPlace(m Permutable)
}

// swap exchanges the elements at two coordinates of m.
func swap(m Permutable, ar, ac, br, bc int) {
	cols := m.Cols()
	m.SwapLinear(matrix.Index(ar, ac, cols), matrix.Index(br, bc, cols))
}

// reverseRange reverses the elements at linear positions [start, end).
// Does nothing for an empty or inverted range. This is the primitive
// the whole-matrix Reverse and both Shift rotations are built from.
// Complexity: O(end-start) swaps, O(1) space.
func reverseRange(m Permutable, start, end int) {
	mid := (start + end) / 2
	for i := start; i < mid; i++ {
		m.SwapLinear(i, end+start-i-1)
	}
}

// InPlace does nothing.
func (Identity) InPlace(Permutable) {}

// InPlace transposes m. Square matrices swap their lower triangle with
// the upper one, O(1) space. Rectangular matrices follow permutation
// cycles of n -> (n*R) mod (size-1) over the flat layout — positions 0
// and size-1 are fixed points — then exchange the dimensions; the
// visited set costs O(size) space.
func (t Transpose) InPlace(m Permutable) {
	if matrix.IsSquare(m) {
		dim := m.Rows()
		for i := 0; i < dim; i++ {
			for j := 0; j < i; j++ {
				swap(m, i, j, j, i)
			}
		}

		return
	}

	rows := m.Rows()
	limit := matrix.Size(m) - 1
	moved := make(map[int]struct{}, limit)

	i := 1
	for i < limit {
		cycleBegin := i
		toReplace := i
		for {
			next := (i * rows) % limit
			m.SwapLinear(toReplace, next)
			moved[i] = struct{}{}
			i = next
			if i == cycleBegin {
				break
			}
		}

		i = 1
		for i < limit {
			if _, seen := moved[i]; !seen {
				break
			}
			i++
		}
	}
	m.SwapDimensions()
}

// InPlace rotates m a quarter turn clockwise: transpose, then flip
// horizontally.
func (RotateR) InPlace(m Permutable) {
	Transpose{}.InPlace(m)
	FlipH{}.InPlace(m)
}

// InPlace rotates m a quarter turn counter-clockwise: transpose, then
// flip vertically.
func (RotateL) InPlace(m Permutable) {
	Transpose{}.InPlace(m)
	FlipV{}.InPlace(m)
}

// InPlace reverses every row of m. Odd column counts leave the middle
// column untouched.
func (FlipH) InPlace(m Permutable) {
	rows, cols := matrix.ShapeOf(m)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols/2; j++ {
			swap(m, i, j, i, cols-j-1)
		}
	}
}

// InPlace reverses every column of m. Odd row counts leave the middle
// row untouched.
func (FlipV) InPlace(m Permutable) {
	rows, cols := matrix.ShapeOf(m)
	for i := 0; i < rows/2; i++ {
		for j := 0; j < cols; j++ {
			swap(m, i, j, rows-i-1, j)
		}
	}
}

// InPlace reverses the whole row-major element order.
func (Reverse) InPlace(m Permutable) {
	reverseRange(m, 0, matrix.Size(m))
}

// InPlace rotates the element order toward the front by the reduced
// shift amount, as a triple reversal: whole, shifted head, remaining
// tail. A reduced shift of 0 does nothing.
func (f ShiftFront) InPlace(m Permutable) {
	size := matrix.Size(m)
	if size == 0 {
		return
	}
	shift := reduce(f.n, size)
	if shift == 0 {
		return
	}

	reverseRange(m, 0, size)
	reverseRange(m, 0, shift)
	reverseRange(m, shift, size)
}

// InPlace rotates the element order toward the back by the reduced
// shift amount, as a triple reversal: whole, shifted tail, remaining
// head. A reduced shift of 0 does nothing.
func (b ShiftBack) InPlace(m Permutable) {
	size := matrix.Size(m)
	if size == 0 {
		return
	}
	shift := reduce(b.n, size)
	if shift == 0 {
		return
	}

	reverseRange(m, 0, size)
	reverseRange(m, size-shift, size)
	reverseRange(m, 0, size-shift)
}

// compile-time conformance of the permutation strategies
var (
	_ InPlacer = Identity{}
	_ InPlacer = Transpose{}
	_ InPlacer = RotateR{}
	_ InPlacer = RotateL{}
	_ InPlacer = FlipH{}
	_ InPlacer = FlipV{}
	_ InPlacer = Reverse{}
	_ InPlacer = ShiftFront{}
	_ InPlacer = ShiftBack{}
)
