package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tcheufa/matrixable/matrix"
)

func mustFromRows[T any](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestNewDense_RejectsNonPositiveDims(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense[int](dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrBadShape, "dims %v", dims)
	}
}

func TestFromSlice_SizeMismatch(t *testing.T) {
	_, err := matrix.FromSlice([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

func TestDense_AtSetRef(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	require.NoError(t, m.Set(0, 0, 9))
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9, v)

	p, err := m.Ref(1, 0)
	require.NoError(t, err)
	*p = 42
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Ref(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

func TestDense_SwapAndSwapLinear(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})

	m.Swap(matrix.Coord{Row: 0, Col: 0}, matrix.Coord{Row: 1, Col: 2})
	require.Equal(t, []int{5, 1, 2, 3, 4, 0}, m.Data())

	m.SwapLinear(1, 4)
	require.Equal(t, []int{5, 4, 2, 3, 1, 0}, m.Data())

	// equal positions are a no-op
	m.SwapLinear(2, 2)
	require.Equal(t, []int{5, 4, 2, 3, 1, 0}, m.Data())

	require.Panics(t, func() { m.SwapLinear(0, 6) })
	require.Panics(t, func() {
		m.Swap(matrix.Coord{Row: 2, Col: 0}, matrix.Coord{Row: 0, Col: 0})
	})
}

func TestDense_SwapDimensions(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})
	m.SwapDimensions()
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	// data untouched, reinterpreted
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestCoordConversions(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})

	require.Equal(t, 5, matrix.Index(1, 2, 3))
	r, c := matrix.Coords(5, 3)
	require.Equal(t, 1, r)
	require.Equal(t, 2, c)

	require.Equal(t, 4, matrix.IndexOf(m, matrix.Coord{Row: 1, Col: 1}))
	require.Equal(t, matrix.Coord{Row: 1, Col: 1}, matrix.CoordOf(m, 4))

	n, ok := matrix.CheckedIndexOf(m, matrix.Coord{Row: 1, Col: 2})
	require.True(t, ok)
	require.Equal(t, 5, n)
	_, ok = matrix.CheckedIndexOf(m, matrix.Coord{Row: 2, Col: 0})
	require.False(t, ok)

	co, ok := matrix.CheckedCoordOf(m, 0)
	require.True(t, ok)
	require.Equal(t, matrix.Coord{}, co)
	_, ok = matrix.CheckedCoordOf(m, 6)
	require.False(t, ok)
}

func TestShapePredicates(t *testing.T) {
	wide := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})
	square := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	rowVec := mustFromRows(t, [][]int{{1, 2, 3}})
	colVec := mustFromRows(t, [][]int{{1}, {2}, {3}})
	single := mustFromRows(t, [][]int{{7}})

	require.Equal(t, 6, matrix.Size(wide))
	require.False(t, matrix.IsSquare(wide))
	require.True(t, matrix.IsSquare(square))
	require.True(t, matrix.IsHorizontal(wide))
	require.False(t, matrix.IsVertical(wide))
	require.True(t, matrix.IsVector(rowVec))
	require.True(t, matrix.IsVector(colVec))
	require.False(t, matrix.IsVector(square))
	require.True(t, matrix.IsSingleton(single))
	// a singleton is both horizontal and vertical
	require.True(t, matrix.IsHorizontal(single))
	require.True(t, matrix.IsVertical(single))
	require.False(t, matrix.IsEmpty(single))
}

func TestDiagonals(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}})

	require.Equal(t, 6, matrix.NumDiags(m))
	// 2x5: every diagonal has at most 2 elements
	wantLens := []int{1, 2, 2, 2, 2, 1}
	for n, want := range wantLens {
		require.Equal(t, want, matrix.DiagLen(m, n), "diag %d", n)
	}

	sq := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.Equal(t, 5, matrix.NumDiags(sq))
	require.Equal(t, 3, matrix.DiagLen(sq, 2)) // main
	require.Equal(t, 1, matrix.DiagLen(sq, 0))
	require.Equal(t, 1, matrix.DiagLen(sq, 4))
}

func TestFirstLastAtIndex(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})

	v, err := matrix.First(m)
	require.NoError(t, err)
	require.Equal(t, 0, v)

	v, err = matrix.Last(m)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	v, err = matrix.AtIndex(m, 4)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	_, err = matrix.AtIndex(m, 6)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestEqual(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	c := mustFromRows(t, [][]int{{1, 2}, {3, 5}})
	d := mustFromRows(t, [][]int{{1, 2, 3, 4}})

	require.True(t, matrix.Equal[int](a, b))
	require.False(t, matrix.Equal[int](a, c))
	// same elements, different shape
	require.False(t, matrix.Equal[int](a, d))
}

func TestIsSymmetric(t *testing.T) {
	require.True(t, matrix.IsSymmetric[int](mustFromRows(t, [][]int{
		{1, 2, 3},
		{2, 5, 6},
		{3, 6, 9},
	})))
	require.False(t, matrix.IsSymmetric[int](mustFromRows(t, [][]int{
		{1, 2},
		{3, 4},
	})))
	// non-square is never symmetric
	require.False(t, matrix.IsSymmetric[int](mustFromRows(t, [][]int{{1, 2}})))
	// singleton trivially is
	require.True(t, matrix.IsSymmetric[int](mustFromRows(t, [][]int{{1}})))
}

func TestNeighbors(t *testing.T) {
	m := mustFromRows(t, [][]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})

	vals, present := matrix.Neighbors(m, 1, 1)
	for k := 0; k < 8; k++ {
		require.True(t, present[k], "neighbor %d", k)
	}
	require.ElementsMatch(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, vals[:])

	// corner: only 3 neighbors exist
	vals, present = matrix.Neighbors(m, 0, 0)
	var got []int
	for k := 0; k < 8; k++ {
		if present[k] {
			got = append(got, vals[k])
		}
	}
	require.ElementsMatch(t, []int{1, 3, 4}, got)
}

func TestSwapRowsCols(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}})
	matrix.SwapRows[int](m, 0, 2)
	require.Equal(t, []int{6, 7, 8, 3, 4, 5, 0, 1, 2}, m.Data())

	matrix.SwapCols[int](m, 0, 1)
	require.Equal(t, []int{7, 6, 8, 4, 3, 5, 1, 0, 2}, m.Data())
}

func TestCloneIsIndependent(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestFilled(t *testing.T) {
	m, err := matrix.Filled(2, 3, 7)
	require.NoError(t, err)
	require.Equal(t, []int{7, 7, 7, 7, 7, 7}, m.Data())
}
