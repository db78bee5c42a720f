// Package matrix: Dense is the concrete, row-major implementation of the
// Mutable contract, storing elements in a flat slice for cache
// friendliness. It is deliberately fixed-size: the shape never changes
// after construction except through SwapDimensions, which reinterprets
// the same buffer during an in-place transpose.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major
// order. The invariant r*c == len(data) is established by the
// constructors and preserved by every method.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense with all elements set to the zero value
// of T. Returns ErrBadShape unless rows > 0 and cols > 0.
// Complexity: O(r·c) time and memory.
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Filled creates an r×c Dense with every element set to v.
// Returns ErrBadShape unless rows > 0 and cols > 0.
func Filled[T any](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// FromSlice creates a Dense that adopts data as its backing storage.
// Returns ErrBadShape on non-positive dimensions and ErrSizeMismatch
// unless len(data) == rows*cols. The slice is NOT copied; the caller
// hands over ownership.
func FromSlice[T any](data []T, rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice(%d,%d): %w", rows, cols, ErrSizeMismatch)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// FromRows creates a Dense by copying a slice of equally sized rows.
// Returns ErrBadShape for zero rows or zero-length first row, and
// ErrRagged when row lengths differ.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRagged
		}
		data = append(data, row...)
	}

	return &Dense[T]{r: len(rows), c: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col), reporting false for
// coordinates outside the matrix. Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange if the coordinate is invalid. Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, ok := m.indexOf(row, col)
	if !ok {
		var zero T
		return zero, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[idx], nil
}

// Ref returns a pointer to the element at (row, col).
// Returns ErrOutOfRange if the coordinate is invalid. Complexity: O(1).
func (m *Dense[T]) Ref(row, col int) (*T, error) {
	idx, ok := m.indexOf(row, col)
	if !ok {
		return nil, fmt.Errorf("Dense.Ref(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return &m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange if the coordinate is invalid. Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, ok := m.indexOf(row, col)
	if !ok {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[idx] = v

	return nil
}

// Swap exchanges the elements at coordinates a and b.
// A no-op when a == b. Panics if either coordinate is invalid.
func (m *Dense[T]) Swap(a, b Coord) {
	if a == b {
		return
	}
	ia, okA := m.indexOf(a.Row, a.Col)
	ib, okB := m.indexOf(b.Row, b.Col)
	if !okA || !okB {
		panic(fmt.Sprintf("matrix: Dense.Swap(%v,%v) out of range for %dx%d", a, b, m.r, m.c))
	}
	m.data[ia], m.data[ib] = m.data[ib], m.data[ia]
}

// SwapLinear exchanges the elements at linear positions a and b.
// A no-op when a == b. Panics if either index is invalid.
func (m *Dense[T]) SwapLinear(a, b int) {
	if a == b {
		return
	}
	if a < 0 || a >= len(m.data) || b < 0 || b >= len(m.data) {
		panic(fmt.Sprintf("matrix: Dense.SwapLinear(%d,%d) out of range for size %d", a, b, len(m.data)))
	}
	m.data[a], m.data[b] = m.data[b], m.data[a]
}

// SwapDimensions exchanges the reported row and column counts without
// moving data. Used by the in-place rectangular transpose to
// reinterpret the permuted flat buffer. Complexity: O(1).
func (m *Dense[T]) SwapDimensions() {
	m.r, m.c = m.c, m.r
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r·c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Data exposes the flat row-major backing slice. Mutating it mutates
// the matrix; the length must never be changed.
func (m *Dense[T]) Data() []T { return m.data }

// String implements fmt.Stringer for easy debugging.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dense %dx%d", m.r, m.c))
	for i := 0; i < m.r; i++ {
		sb.WriteString("\n")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%v", m.data[i*m.c+j]))
		}
	}

	return sb.String()
}
