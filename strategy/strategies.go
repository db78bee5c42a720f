// Package strategy: the access-strategy catalog.
//
// Every mapping rule here is pure arithmetic over the backing shape it
// is handed. A rule returns ok == false when the virtual coordinate has
// no physical counterpart; it never inspects element values.

package strategy

import (
	"fmt"

	"github.com/tcheufa/matrixable/access"
	"github.com/tcheufa/matrixable/matrix"
)

// Identity presents the backing matrix unchanged.
type Identity struct{}

// Map returns (row, col) as-is.
func (Identity) Map(_ matrix.Shape, row, col int) (int, int, bool) {
	return row, col, true
}

// Rows returns the backing row count.
func (Identity) Rows(s matrix.Shape) int { return s.Rows() }

// Cols returns the backing column count.
func (Identity) Cols(s matrix.Shape) int { return s.Cols() }

// Transpose mirrors the matrix over its main diagonal: virtual (i, j)
// reads physical (j, i), and the presented shape is the backing shape
// with rows and columns exchanged.
type Transpose struct{}

func (Transpose) Map(_ matrix.Shape, row, col int) (int, int, bool) {
	return col, row, true
}

func (Transpose) Rows(s matrix.Shape) int { return s.Cols() }

func (Transpose) Cols(s matrix.Shape) int { return s.Rows() }

// RotateR rotates the matrix a quarter turn clockwise: virtual (i, j)
// reads physical (R-1-j, i) over an R-row backing. Shape transposes.
type RotateR struct{}

func (RotateR) Map(s matrix.Shape, row, col int) (int, int, bool) {
	pr := s.Rows() - 1 - col
	if pr < 0 {
		return 0, 0, false
	}

	return pr, row, true
}

func (RotateR) Rows(s matrix.Shape) int { return s.Cols() }

func (RotateR) Cols(s matrix.Shape) int { return s.Rows() }

// RotateL rotates the matrix a quarter turn counter-clockwise: virtual
// (i, j) reads physical (j, C-1-i) over a C-column backing. Shape
// transposes.
type RotateL struct{}

func (RotateL) Map(s matrix.Shape, row, col int) (int, int, bool) {
	pc := s.Cols() - 1 - row
	if pc < 0 {
		return 0, 0, false
	}

	return col, pc, true
}

func (RotateL) Rows(s matrix.Shape) int { return s.Cols() }

func (RotateL) Cols(s matrix.Shape) int { return s.Rows() }

// FlipH mirrors the matrix horizontally (reverses every row): virtual
// (i, j) reads physical (i, C-1-j). Shape is unchanged.
type FlipH struct{}

func (FlipH) Map(s matrix.Shape, row, col int) (int, int, bool) {
	pc := s.Cols() - 1 - col
	if pc < 0 {
		return 0, 0, false
	}

	return row, pc, true
}

func (FlipH) Rows(s matrix.Shape) int { return s.Rows() }

func (FlipH) Cols(s matrix.Shape) int { return s.Cols() }

// FlipV mirrors the matrix vertically (reverses every column): virtual
// (i, j) reads physical (R-1-i, j). Shape is unchanged.
type FlipV struct{}

func (FlipV) Map(s matrix.Shape, row, col int) (int, int, bool) {
	pr := s.Rows() - 1 - row
	if pr < 0 {
		return 0, 0, false
	}

	return pr, col, true
}

func (FlipV) Rows(s matrix.Shape) int { return s.Rows() }

func (FlipV) Cols(s matrix.Shape) int { return s.Cols() }

// Reverse reverses the row-major element order (equivalent to a half
// turn): virtual (i, j) reads physical (R-1-i, C-1-j). Shape is
// unchanged.
type Reverse struct{}

func (Reverse) Map(s matrix.Shape, row, col int) (int, int, bool) {
	pr := s.Rows() - 1 - row
	pc := s.Cols() - 1 - col
	if pr < 0 || pc < 0 {
		return 0, 0, false
	}

	return pr, pc, true
}

func (Reverse) Rows(s matrix.Shape) int { return s.Rows() }

func (Reverse) Cols(s matrix.Shape) int { return s.Cols() }

// ShiftFront rotates the row-major element order toward the front of
// the matrix by n positions, wrapping around. The amount is reduced
// modulo the matrix size, so a shift of 0 (or any multiple of the size)
// is the identity. Shape is unchanged.
type ShiftFront struct {
	n int
}

// NewShiftFront returns a front shift by n positions.
func NewShiftFront(n int) ShiftFront { return ShiftFront{n: n} }

func (f ShiftFront) Map(s matrix.Shape, row, col int) (int, int, bool) {
	n, ok := matrix.CheckedIndexOf(s, matrix.Coord{Row: row, Col: col})
	if !ok {
		return 0, 0, false
	}

	size := matrix.Size(s)
	shift := reduce(f.n, size)
	if n >= shift {
		n -= shift
	} else {
		n += size - shift
	}
	c := matrix.CoordOf(s, n)

	return c.Row, c.Col, true
}

func (ShiftFront) Rows(s matrix.Shape) int { return s.Rows() }

func (ShiftFront) Cols(s matrix.Shape) int { return s.Cols() }

// ShiftBack rotates the row-major element order toward the back of the
// matrix by n positions, wrapping around. ShiftBack(n) is the exact
// inverse of ShiftFront(n). Shape is unchanged.
type ShiftBack struct {
	n int
}

// NewShiftBack returns a back shift by n positions.
func NewShiftBack(n int) ShiftBack { return ShiftBack{n: n} }

func (b ShiftBack) Map(s matrix.Shape, row, col int) (int, int, bool) {
	n, ok := matrix.CheckedIndexOf(s, matrix.Coord{Row: row, Col: col})
	if !ok {
		return 0, 0, false
	}

	size := matrix.Size(s)
	shift := reduce(b.n, size)
	if n >= size-shift {
		n -= size - shift
	} else {
		n += shift
	}
	c := matrix.CoordOf(s, n)

	return c.Row, c.Col, true
}

func (ShiftBack) Rows(s matrix.Shape) int { return s.Rows() }

func (ShiftBack) Cols(s matrix.Shape) int { return s.Cols() }

// reduce brings a shift amount into [0, size). Negative amounts wrap
// the other way.
func reduce(n, size int) int {
	n %= size
	if n < 0 {
		n += size
	}

	return n
}

// Submatrix restricts access to a rectangular window. Coordinates
// inside the window map to themselves — the window is NOT rebased to
// (0, 0) — and coordinates outside it resolve to nothing. The presented
// shape is the size of the clipped ranges; range bounds beyond the
// backing extent are clamped rather than erroring.
type Submatrix struct {
	rows Range
	cols Range
}

// NewSubmatrix returns a window over the given row and column ranges.
func NewSubmatrix(rows, cols Range) Submatrix {
	return Submatrix{rows: rows, cols: cols}
}

func (w Submatrix) Map(s matrix.Shape, row, col int) (int, int, bool) {
	rlo, rhi := w.rows.clip(s.Rows())
	clo, chi := w.cols.clip(s.Cols())
	if row < rlo || row >= rhi || col < clo || col >= chi {
		return 0, 0, false
	}

	return row, col, true
}

func (w Submatrix) Rows(s matrix.Shape) int {
	lo, hi := w.rows.clip(s.Rows())

	return hi - lo
}

func (w Submatrix) Cols(s matrix.Shape) int {
	lo, hi := w.cols.clip(s.Cols())

	return hi - lo
}

// Reshape reinterprets the row-major element order under new row and
// column counts. The backing must hold exactly rows*cols elements;
// Map panics otherwise (reshaping to a different size is a structural
// bug, not a data condition).
type Reshape struct {
	rows, cols int
}

// NewReshape returns a reshape to rows x cols.
func NewReshape(rows, cols int) Reshape {
	return Reshape{rows: rows, cols: cols}
}

func (r Reshape) Map(s matrix.Shape, row, col int) (int, int, bool) {
	if matrix.Size(s) != r.rows*r.cols {
		panic(fmt.Sprintf(
			"strategy: Reshape to %dx%d does not fit %d elements",
			r.rows, r.cols, matrix.Size(s),
		))
	}
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return 0, 0, false
	}
	c := matrix.CoordOf(s, matrix.Index(row, col, r.cols))

	return c.Row, c.Col, true
}

func (r Reshape) Rows(matrix.Shape) int { return r.rows }

func (r Reshape) Cols(matrix.Shape) int { return r.cols }

// AccessMap routes every virtual coordinate through an explicit mapping
// matrix: the entry at (i, j), read as a row-major linear index into
// the backing, names the physical element that virtual (i, j) presents.
// The shape presented is the mapping matrix's own shape. A mapping
// entry pointing outside the backing is a structural bug and panics.
type AccessMap struct {
	mapping matrix.Matrix[int]
}

// NewAccessMap returns a strategy driven by the given mapping matrix.
func NewAccessMap(mapping matrix.Matrix[int]) AccessMap {
	return AccessMap{mapping: mapping}
}

func (a AccessMap) Map(s matrix.Shape, row, col int) (int, int, bool) {
	n, err := a.mapping.At(row, col)
	if err != nil {
		return 0, 0, false
	}
	if !matrix.CheckIndex(s, n) {
		panic(fmt.Sprintf(
			"strategy: AccessMap entry %d at (%d,%d) outside target of size %d",
			n, row, col, matrix.Size(s),
		))
	}
	c := matrix.CoordOf(s, n)

	return c.Row, c.Col, true
}

func (a AccessMap) Rows(matrix.Shape) int { return a.mapping.Rows() }

func (a AccessMap) Cols(matrix.Shape) int { return a.mapping.Cols() }

// compile-time conformance of the whole catalog
var (
	_ access.Strategy = Identity{}
	_ access.Strategy = Transpose{}
	_ access.Strategy = RotateR{}
	_ access.Strategy = RotateL{}
	_ access.Strategy = FlipH{}
	_ access.Strategy = FlipV{}
	_ access.Strategy = Reverse{}
	_ access.Strategy = ShiftFront{}
	_ access.Strategy = ShiftBack{}
	_ access.Strategy = Submatrix{}
	_ access.Strategy = Reshape{}
	_ access.Strategy = AccessMap{}
)
