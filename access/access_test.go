package access_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tcheufa/matrixable/access"
	"github.com/tcheufa/matrixable/matrix"
)

// transposed is a minimal strategy for exercising views without
// depending on the catalog package.
type transposed struct{}

func (transposed) Map(_ matrix.Shape, row, col int) (int, int, bool) {
	return col, row, true
}
func (transposed) Rows(s matrix.Shape) int { return s.Cols() }
func (transposed) Cols(s matrix.Shape) int { return s.Rows() }

// headRows exposes only the first n rows, identity-mapped.
type headRows struct{ n int }

func (h headRows) Map(s matrix.Shape, row, col int) (int, int, bool) {
	if row < 0 || row >= h.n || col < 0 || col >= s.Cols() {
		return 0, 0, false
	}
	return row, col, true
}
func (h headRows) Rows(matrix.Shape) int   { return h.n }
func (h headRows) Cols(s matrix.Shape) int { return s.Cols() }

func mustFromRows[T any](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestView_RemapsShapeAndReads(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})
	v := access.NewView[int](m, transposed{})

	require.Equal(t, 3, v.Rows())
	require.Equal(t, 2, v.Cols())

	got, err := v.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 5, got)

	want := mustFromRows(t, [][]int{{0, 3}, {1, 4}, {2, 5}})
	require.True(t, matrix.Equal[int](want, v))
}

func TestView_MissIsOutOfRange(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1}, {2, 3}})
	v := access.NewView[int](m, headRows{n: 1})

	require.Equal(t, 1, v.Rows())
	_, err := v.At(1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestView_NestsLikeComposition(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})
	// transpose twice: back to the original
	v := access.NewView[int](access.NewView[int](m, transposed{}), transposed{})

	require.Equal(t, 2, v.Rows())
	require.Equal(t, 3, v.Cols())
	require.True(t, matrix.Equal[int](m, v))
}

func TestMutView_WritesLandOnBacking(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})
	v := access.NewMutView[int](m, transposed{})

	require.NoError(t, v.Set(2, 0, 99)) // virtual (2,0) is physical (0,2)
	got, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 99, got)

	p, err := v.Ref(0, 1)
	require.NoError(t, err)
	*p = -1
	got, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -1, got)

	require.ErrorIs(t, v.Set(3, 0, 0), matrix.ErrOutOfRange)
}

func TestMutView_SwapInVirtualCoordinates(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})
	v := access.NewMutView[int](m, transposed{})

	// virtual (0,0)=phys(0,0), virtual (2,1)=phys(1,2)
	v.Swap(matrix.Coord{Row: 0, Col: 0}, matrix.Coord{Row: 2, Col: 1})
	require.Equal(t, []int{5, 1, 2, 3, 4, 0}, m.Data())

	// linear positions against the 3x2 virtual shape
	v.SwapLinear(0, 5)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, m.Data())

	require.Panics(t, func() { v.SwapLinear(0, 6) })
}

func TestObserver_FoldsShape(t *testing.T) {
	o := access.NewObserver(2, 5)
	require.Equal(t, 2, o.Rows())
	require.Equal(t, 5, o.Cols())

	o2 := o.Update(transposed{})
	require.Equal(t, 5, o2.Rows())
	require.Equal(t, 2, o2.Cols())
	// value semantics: the source observer is untouched
	require.Equal(t, 2, o.Rows())

	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	require.Equal(t, 3, access.ObserverOf(m).Rows())
}

func TestView_Unwrap(t *testing.T) {
	m := mustFromRows(t, [][]int{{1}})
	v := access.NewView[int](m, transposed{})
	require.Equal(t, matrix.Matrix[int](m), v.Unwrap())

	mv := access.NewMutView[int](m, transposed{})
	require.Equal(t, matrix.Mutable[int](m), mv.Unwrap())
}
