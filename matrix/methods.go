// Package matrix: derived read and mutation helpers.
// Everything in this file is expressible purely in terms of the
// capability interfaces in types.go — no function here assumes a
// particular storage layout, so all of them work on access views too.

package matrix

// Size returns the number of elements of s. Complexity: O(1).
func Size(s Shape) int {
	return s.Rows() * s.Cols()
}

// ShapeOf returns the (rows, cols) dimensions of s. Complexity: O(1).
func ShapeOf(s Shape) (rows, cols int) {
	return s.Rows(), s.Cols()
}

// IsEmpty reports whether s holds no elements.
func IsEmpty(s Shape) bool {
	return Size(s) == 0
}

// IsSquare reports whether s has as many rows as columns.
// Empty shapes with equal counts are square.
func IsSquare(s Shape) bool {
	return s.Rows() == s.Cols()
}

// IsSingleton reports whether s is exactly 1×1.
func IsSingleton(s Shape) bool {
	return s.Rows() == 1 && s.Cols() == 1
}

// IsVector reports whether s is a single row or a single column.
func IsVector(s Shape) bool {
	return s.Rows() == 1 || s.Cols() == 1
}

// IsHorizontal reports whether s is at least as wide as it is tall.
func IsHorizontal(s Shape) bool {
	return s.Rows() <= s.Cols()
}

// IsVertical reports whether s is at least as tall as it is wide.
func IsVertical(s Shape) bool {
	return s.Rows() >= s.Cols()
}

// NumDiags returns the number of diagonals of s. Diagonals run from the
// bottom-left corner to the top-right corner; index rows-1 denotes the
// main diagonal. An empty shape has no diagonals.
func NumDiags(s Shape) int {
	if IsEmpty(s) {
		return 0
	}

	return s.Rows() + s.Cols() - 1
}

// DiagLen returns the length of the n-th diagonal of s, or 0 if s is
// empty or no such diagonal exists. Lengths grow by one per step from
// either corner and are capped by the shorter dimension.
func DiagLen(s Shape, n int) int {
	nd := NumDiags(s)
	if n < 0 || n >= nd {
		return 0
	}

	return min(n+1, nd-n, s.Rows(), s.Cols())
}

// AtIndex retrieves the element at row-major linear position n.
// Returns ErrOutOfRange if n does not point inside m.
func AtIndex[T any](m Matrix[T], n int) (T, error) {
	c, ok := CheckedCoordOf(m, n)
	if !ok {
		var zero T
		return zero, ErrOutOfRange
	}

	return m.At(c.Row, c.Col)
}

// First returns the top-left element, or ErrOutOfRange if m is empty.
func First[T any](m Matrix[T]) (T, error) {
	return m.At(0, 0)
}

// Last returns the bottom-right element, or ErrOutOfRange if m is empty.
func Last[T any](m Matrix[T]) (T, error) {
	return m.At(m.Rows()-1, m.Cols()-1)
}

// Equal reports whether a and b have the same shape and equal elements
// at every coordinate. Complexity: O(r·c).
func Equal[T comparable](a, b Matrix[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, errA := a.At(i, j)
			y, errB := b.At(i, j)
			if errA != nil || errB != nil || x != y {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports whether m equals its own transpose, walking the
// flat layout against the transpose permutation n → (n·rows) mod (size-1)
// so that no transposed copy is ever allocated.
// An empty or non-square matrix is not symmetric; a singleton is.
// Complexity: O(r·c).
func IsSymmetric[T comparable](m Matrix[T]) bool {
	if IsEmpty(m) || !IsSquare(m) {
		return false
	}
	limit := Size(m) - 1
	r := m.Rows()
	for n := 1; n < limit; n++ {
		dest := (n * r) % limit
		x, _ := AtIndex(m, n)
		y, _ := AtIndex(m, dest)
		if x != y {
			return false
		}
	}

	return true
}

// Neighbors collects the up-to-eight elements one cell adjacent to
// (row, col), from top-left to bottom-right. present[k] reports whether
// the k-th neighbor exists; vals[k] is its value when it does.
// The center position itself need not be inside m, which allows probing
// along the bottom and right edges.
func Neighbors[T any](m Matrix[T], row, col int) (vals [8]T, present [8]bool) {
	offsets := [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	for k, off := range offsets {
		if v, err := m.At(row+off[0], col+off[1]); err == nil {
			vals[k], present[k] = v, true
		}
	}

	return vals, present
}

// SwapRows exchanges rows a and b element by element.
// Panics if either row index is out of range. Complexity: O(cols).
func SwapRows[T any](m Mutable[T], a, b int) {
	for j := 0; j < m.Cols(); j++ {
		m.Swap(Coord{Row: a, Col: j}, Coord{Row: b, Col: j})
	}
}

// SwapCols exchanges columns a and b element by element.
// Panics if either column index is out of range. Complexity: O(rows).
func SwapCols[T any](m Mutable[T], a, b int) {
	for i := 0; i < m.Rows(); i++ {
		m.Swap(Coord{Row: i, Col: a}, Coord{Row: i, Col: b})
	}
}
