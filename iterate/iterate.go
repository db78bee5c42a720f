// Package iterate: read-only iterators.

package iterate

import (
	"fmt"
	"iter"

	"github.com/tcheufa/matrixable/matrix"
)

// All yields every element of m in row-major order. Stops at the first
// element that does not resolve.
func All[T any](m matrix.Matrix[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		size := matrix.Size(m)
		for n := 0; n < size; n++ {
			v, err := matrix.AtIndex(m, n)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Enumerate yields every element of m with its coordinate, in row-major
// order. Stops at the first element that does not resolve.
func Enumerate[T any](m matrix.Matrix[T]) iter.Seq2[matrix.Coord, T] {
	return func(yield func(matrix.Coord, T) bool) {
		rows, cols := matrix.ShapeOf(m)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, err := m.At(i, j)
				if err != nil || !yield(matrix.Coord{Row: i, Col: j}, v) {
					return
				}
			}
		}
	}
}

// Row yields the elements of row i, left to right. Returns
// matrix.ErrOutOfRange if i is not a valid row index.
func Row[T any](m matrix.Matrix[T], i int) (iter.Seq[T], error) {
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("Row(%d) of %d: %w", i, m.Rows(), matrix.ErrOutOfRange)
	}

	return func(yield func(T) bool) {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil || !yield(v) {
				return
			}
		}
	}, nil
}

// Col yields the elements of column j, top to bottom. Returns
// matrix.ErrOutOfRange if j is not a valid column index.
func Col[T any](m matrix.Matrix[T], j int) (iter.Seq[T], error) {
	if j < 0 || j >= m.Cols() {
		return nil, fmt.Errorf("Col(%d) of %d: %w", j, m.Cols(), matrix.ErrOutOfRange)
	}

	return func(yield func(T) bool) {
		for i := 0; i < m.Rows(); i++ {
			v, err := m.At(i, j)
			if err != nil || !yield(v) {
				return
			}
		}
	}, nil
}

// diagStart returns the top-left endpoint of diagonal n for a shape
// with the given row count. Diagonal 0 is the bottom-left corner.
func diagStart(rows, n int) matrix.Coord {
	if n < rows {
		return matrix.Coord{Row: rows - 1 - n, Col: 0}
	}

	return matrix.Coord{Row: 0, Col: n - rows + 1}
}

// Diag yields the elements of diagonal n, walking toward the
// bottom-right. Diagonals are indexed bottom-left (0) to top-right;
// rows-1 is the main diagonal. Returns matrix.ErrOutOfRange if n is not
// a valid diagonal index.
func Diag[T any](m matrix.Matrix[T], n int) (iter.Seq[T], error) {
	nd := matrix.NumDiags(m)
	if n < 0 || n >= nd {
		return nil, fmt.Errorf("Diag(%d) of %d: %w", n, nd, matrix.ErrOutOfRange)
	}

	return func(yield func(T) bool) {
		c := diagStart(m.Rows(), n)
		for ; matrix.Check(m, c.Row, c.Col); c.Row, c.Col = c.Row+1, c.Col+1 {
			v, err := m.At(c.Row, c.Col)
			if err != nil || !yield(v) {
				return
			}
		}
	}, nil
}

// MainDiag yields the main diagonal of m. Empty sequence on an empty
// matrix.
func MainDiag[T any](m matrix.Matrix[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; matrix.Check(m, i, i); i++ {
			v, err := m.At(i, i)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Rows yields each row index together with that row's iterator.
func Rows[T any](m matrix.Matrix[T]) iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for i := 0; i < m.Rows(); i++ {
			row, err := Row(m, i)
			if err != nil || !yield(i, row) {
				return
			}
		}
	}
}

// Cols yields each column index together with that column's iterator.
func Cols[T any](m matrix.Matrix[T]) iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for j := 0; j < m.Cols(); j++ {
			col, err := Col(m, j)
			if err != nil || !yield(j, col) {
				return
			}
		}
	}
}

// Diags yields each diagonal index together with that diagonal's
// iterator, bottom-left to top-right.
func Diags[T any](m matrix.Matrix[T]) iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for n := 0; n < matrix.NumDiags(m); n++ {
			diag, err := Diag(m, n)
			if err != nil || !yield(n, diag) {
				return
			}
		}
	}
}
