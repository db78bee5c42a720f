// Package access: the Strategy contract and the View/MutView wrappers.

package access

import (
	"fmt"

	"github.com/tcheufa/matrixable/matrix"
)

// Strategy maps virtual coordinates, as seen by a view, onto physical
// coordinates of whatever the view wraps. Implementations must be
// deterministic, side-effect-free, and must derive everything from the
// Shape they are handed — in a nested chain each strategy receives the
// shape of the layer it immediately wraps, never a cached global shape.
type Strategy interface {
	// Map resolves the virtual coordinate (row, col) against a backing
	// of shape s. ok == false means the virtual coordinate has no
	// corresponding physical element; callers treat that exactly like an
	// ordinary bounds failure.
	Map(s matrix.Shape, row, col int) (prow, pcol int, ok bool)

	// Rows returns the virtual row count the strategy presents over a
	// backing of shape s.
	Rows(s matrix.Shape) int

	// Cols returns the virtual column count the strategy presents over a
	// backing of shape s.
	Cols(s matrix.Shape) int
}

// View is a zero-copy, read-only window onto m with every coordinate
// remapped through s. View itself implements matrix.Matrix, so views
// nest: wrapping a view in another view composes the mappings lazily.
type View[T any] struct {
	m matrix.Matrix[T]
	s Strategy
}

// NewView wraps m in a read-only view driven by s. O(1); no copying.
func NewView[T any](m matrix.Matrix[T], s Strategy) *View[T] {
	return &View[T]{m: m, s: s}
}

// Rows returns the virtual row count of the view.
func (v *View[T]) Rows() int { return v.s.Rows(v.m) }

// Cols returns the virtual column count of the view.
func (v *View[T]) Cols() int { return v.s.Cols(v.m) }

// At resolves (row, col) through the strategy and reads the element it
// lands on. Returns matrix.ErrOutOfRange when the mapping reports no
// physical element for the virtual coordinate.
func (v *View[T]) At(row, col int) (T, error) {
	pr, pc, ok := v.s.Map(v.m, row, col)
	if !ok {
		var zero T
		return zero, fmt.Errorf("View.At(%d,%d): %w", row, col, matrix.ErrOutOfRange)
	}

	return v.m.At(pr, pc)
}

// Unwrap returns the matrix the view was built over.
func (v *View[T]) Unwrap() matrix.Matrix[T] { return v.m }

// Strategy returns the strategy driving the view.
func (v *View[T]) Strategy() Strategy { return v.s }

// MutView is the read-write variant of View: it wraps a Mutable and
// implements Mutable itself, so strategy-directed writes and swaps nest
// the same way reads do.
type MutView[T any] struct {
	m matrix.Mutable[T]
	s Strategy
}

// NewMutView wraps m in a mutable view driven by s. O(1); no copying.
func NewMutView[T any](m matrix.Mutable[T], s Strategy) *MutView[T] {
	return &MutView[T]{m: m, s: s}
}

// Rows returns the virtual row count of the view.
func (v *MutView[T]) Rows() int { return v.s.Rows(v.m) }

// Cols returns the virtual column count of the view.
func (v *MutView[T]) Cols() int { return v.s.Cols(v.m) }

// At resolves (row, col) through the strategy and reads the element.
func (v *MutView[T]) At(row, col int) (T, error) {
	pr, pc, ok := v.s.Map(v.m, row, col)
	if !ok {
		var zero T
		return zero, fmt.Errorf("MutView.At(%d,%d): %w", row, col, matrix.ErrOutOfRange)
	}

	return v.m.At(pr, pc)
}

// Ref resolves (row, col) through the strategy and returns a pointer to
// the element it lands on.
func (v *MutView[T]) Ref(row, col int) (*T, error) {
	pr, pc, ok := v.s.Map(v.m, row, col)
	if !ok {
		return nil, fmt.Errorf("MutView.Ref(%d,%d): %w", row, col, matrix.ErrOutOfRange)
	}

	return v.m.Ref(pr, pc)
}

// Set resolves (row, col) through the strategy and assigns v there.
func (v *MutView[T]) Set(row, col int, val T) error {
	pr, pc, ok := v.s.Map(v.m, row, col)
	if !ok {
		return fmt.Errorf("MutView.Set(%d,%d): %w", row, col, matrix.ErrOutOfRange)
	}

	return v.m.Set(pr, pc, val)
}

// Swap exchanges the elements the virtual coordinates a and b map to.
// A no-op when a == b. Panics if either coordinate does not resolve.
func (v *MutView[T]) Swap(a, b matrix.Coord) {
	if a == b {
		return
	}
	ar, ac, okA := v.s.Map(v.m, a.Row, a.Col)
	br, bc, okB := v.s.Map(v.m, b.Row, b.Col)
	if !okA || !okB {
		panic(fmt.Sprintf("access: MutView.Swap(%v,%v) does not resolve", a, b))
	}
	v.m.Swap(matrix.Coord{Row: ar, Col: ac}, matrix.Coord{Row: br, Col: bc})
}

// SwapLinear exchanges the elements at virtual linear positions a and b,
// interpreted row-major against the view's own virtual shape.
// A no-op when a == b. Panics if either position does not resolve.
func (v *MutView[T]) SwapLinear(a, b int) {
	if a == b {
		return
	}
	ca, okA := matrix.CheckedCoordOf(v, a)
	cb, okB := matrix.CheckedCoordOf(v, b)
	if !okA || !okB {
		panic(fmt.Sprintf("access: MutView.SwapLinear(%d,%d) out of range for size %d", a, b, matrix.Size(v)))
	}
	v.Swap(ca, cb)
}

// Unwrap returns the mutable matrix the view was built over.
func (v *MutView[T]) Unwrap() matrix.Mutable[T] { return v.m }

// Strategy returns the strategy driving the view.
func (v *MutView[T]) Strategy() Strategy { return v.s }
