// Package strategy: realizing strategies as data movement.

package strategy

import (
	"fmt"

	"github.com/tcheufa/matrixable/access"
	"github.com/tcheufa/matrixable/matrix"
)

// Transform realizes s over m and returns the result. Strategies that
// are pure permutations (InPlacer) rearrange m's own storage and return
// m; everything else materializes into fresh storage via Materialize.
// A 1x1 matrix is a fixed point of every strategy and is returned
// untouched.
//
// Access and transform agree: the returned matrix reads exactly like a
// view of the original m through s.
func Transform[T any](m *matrix.Dense[T], s access.Strategy) (*matrix.Dense[T], error) {
	if matrix.IsSingleton(m) {
		return m, nil
	}
	if ip, ok := s.(InPlacer); ok {
		ip.InPlace(m)

		return m, nil
	}

	return Materialize(m, s)
}

// Materialize evaluates the access mapping of s over m into a freshly
// allocated matrix of the strategy's virtual shape. m is not modified.
// Returns matrix.ErrBadShape when the virtual shape is empty (e.g. a
// Submatrix that clips to nothing) and matrix.ErrOutOfRange when a
// virtual coordinate does not resolve to an element of m.
// Complexity: O(virtual size).
func Materialize[T any](m matrix.Matrix[T], s access.Strategy) (*matrix.Dense[T], error) {
	rows, cols := s.Rows(m), s.Cols(m)
	out, err := matrix.NewDense[T](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Materialize %dx%d: %w", rows, cols, err)
	}

	v := access.NewView(m, s)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			val, err := v.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Materialize (%d,%d): %w", i, j, err)
			}
			if err := out.Set(i, j, val); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Sort rearranges m's elements into ascending row-major order according
// to less, in place. Selection sort: O(size^2) comparisons, O(size)
// swaps, O(1) space — chosen for its minimal swap count, since swaps go
// through the Mutable contract and may be routed through a view.
func Sort[T any](m matrix.Mutable[T], less func(a, b T) bool) {
	size := matrix.Size(m)
	for i := 0; i < size-1; i++ {
		im := i
		min, _ := matrix.AtIndex(m, i)
		for j := i + 1; j < size; j++ {
			cmp, _ := matrix.AtIndex(m, j)
			if !less(min, cmp) {
				im = j
				min = cmp
			}
		}
		m.SwapLinear(im, i)
	}
}
