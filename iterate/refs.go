// Package iterate: mutable iterators. Each mirrors its read-only
// counterpart but yields element pointers, so callers can assign
// through them while traversing.

package iterate

import (
	"fmt"
	"iter"

	"github.com/tcheufa/matrixable/matrix"
)

// AllRefs yields a pointer to every element of m in row-major order.
// Stops at the first element that does not resolve.
func AllRefs[T any](m matrix.Mutable[T]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		rows, cols := matrix.ShapeOf(m)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				p, err := m.Ref(i, j)
				if err != nil || !yield(p) {
					return
				}
			}
		}
	}
}

// EnumerateRefs yields a pointer to every element of m with its
// coordinate, in row-major order.
func EnumerateRefs[T any](m matrix.Mutable[T]) iter.Seq2[matrix.Coord, *T] {
	return func(yield func(matrix.Coord, *T) bool) {
		rows, cols := matrix.ShapeOf(m)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				p, err := m.Ref(i, j)
				if err != nil || !yield(matrix.Coord{Row: i, Col: j}, p) {
					return
				}
			}
		}
	}
}

// RowRefs yields pointers into row i, left to right. Returns
// matrix.ErrOutOfRange if i is not a valid row index.
func RowRefs[T any](m matrix.Mutable[T], i int) (iter.Seq[*T], error) {
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("RowRefs(%d) of %d: %w", i, m.Rows(), matrix.ErrOutOfRange)
	}

	return func(yield func(*T) bool) {
		for j := 0; j < m.Cols(); j++ {
			p, err := m.Ref(i, j)
			if err != nil || !yield(p) {
				return
			}
		}
	}, nil
}

// ColRefs yields pointers into column j, top to bottom. Returns
// matrix.ErrOutOfRange if j is not a valid column index.
func ColRefs[T any](m matrix.Mutable[T], j int) (iter.Seq[*T], error) {
	if j < 0 || j >= m.Cols() {
		return nil, fmt.Errorf("ColRefs(%d) of %d: %w", j, m.Cols(), matrix.ErrOutOfRange)
	}

	return func(yield func(*T) bool) {
		for i := 0; i < m.Rows(); i++ {
			p, err := m.Ref(i, j)
			if err != nil || !yield(p) {
				return
			}
		}
	}, nil
}

// DiagRefs yields pointers into diagonal n, walking toward the
// bottom-right. Same indexing as Diag. Returns matrix.ErrOutOfRange if
// n is not a valid diagonal index.
func DiagRefs[T any](m matrix.Mutable[T], n int) (iter.Seq[*T], error) {
	nd := matrix.NumDiags(m)
	if n < 0 || n >= nd {
		return nil, fmt.Errorf("DiagRefs(%d) of %d: %w", n, nd, matrix.ErrOutOfRange)
	}

	return func(yield func(*T) bool) {
		c := diagStart(m.Rows(), n)
		for ; matrix.Check(m, c.Row, c.Col); c.Row, c.Col = c.Row+1, c.Col+1 {
			p, err := m.Ref(c.Row, c.Col)
			if err != nil || !yield(p) {
				return
			}
		}
	}, nil
}
