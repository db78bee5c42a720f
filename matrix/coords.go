// Package matrix: coordinate arithmetic for row-major layouts.
// Conversions come in two flavors: raw (total functions over ints, no
// bounds checking — garbage in, garbage out) and shape-aware checked
// variants that report whether the position exists.

package matrix

// Index converts (row, col) to a row-major linear index for a layout of
// cols columns. Total function; performs no bounds checking, so an
// invalid coordinate yields a meaningless (but well-defined) index.
// Complexity: O(1).
func Index(row, col, cols int) int {
	return row*cols + col
}

// Coords converts a row-major linear index back to (row, col) for a
// layout of cols columns. Total function; no bounds checking.
// cols must be non-zero — callers must guarantee a non-empty matrix
// before converting, a zero divides and panics (programmer error).
// Complexity: O(1).
func Coords(n, cols int) (row, col int) {
	return n / cols, n % cols
}

// IndexOf converts a Coord to a linear index using the shape of s.
// Unchecked, like Index.
func IndexOf(s Shape, c Coord) int {
	return Index(c.Row, c.Col, s.Cols())
}

// CoordOf converts a linear index to a Coord using the shape of s.
// Unchecked, like Coords; s must not be empty.
func CoordOf(s Shape, n int) Coord {
	row, col := Coords(n, s.Cols())

	return Coord{Row: row, Col: col}
}

// Check reports whether (row, col) points inside s.
// Complexity: O(1).
func Check(s Shape, row, col int) bool {
	return row >= 0 && row < s.Rows() && col >= 0 && col < s.Cols()
}

// CheckIndex reports whether the linear index n points inside s.
// Complexity: O(1).
func CheckIndex(s Shape, n int) bool {
	return n >= 0 && n < Size(s)
}

// CheckedIndexOf converts a Coord to a linear index, reporting false
// when the coordinate falls outside s.
func CheckedIndexOf(s Shape, c Coord) (int, bool) {
	if !Check(s, c.Row, c.Col) {
		return 0, false
	}

	return Index(c.Row, c.Col, s.Cols()), true
}

// CheckedCoordOf converts a linear index to a Coord, reporting false
// when the index falls outside s.
func CheckedCoordOf(s Shape, n int) (Coord, bool) {
	if !CheckIndex(s, n) {
		return Coord{}, false
	}

	return CoordOf(s, n), true
}
