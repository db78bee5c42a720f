// Package strategy: ordered strategy composition.

package strategy

import (
	"github.com/tcheufa/matrixable/access"
	"github.com/tcheufa/matrixable/matrix"
)

// Set is an ordered sequence of strategies that composes like a chain
// of nested views: the first element sits closest to the backing and
// the last element faces the caller. Resolving a Set against a matrix m
// is observably identical to wrapping m in a view per element, in
// order, and reading the outermost view — without building the chain.
//
// Coordinates therefore travel through the set back to front (the last
// pushed strategy sees the caller's coordinate first), and each
// strategy resolves against the virtual shape produced by the
// strategies before it, exactly as it would inside the nested chain.
//
// Set itself implements access.Strategy, so sets nest inside sets and
// drive views and transforms like any single catalog entry.
type Set []access.Strategy

// shapes returns the prefix shape fold over s: shapes[0] is the backing
// shape and shapes[k+1] is the virtual shape after set[0..k].
func (set Set) shapes(s matrix.Shape) []access.Observer {
	shapes := make([]access.Observer, len(set)+1)
	shapes[0] = access.ObserverOf(s)
	for k, st := range set {
		shapes[k+1] = shapes[k].Update(st)
	}

	return shapes
}

// Map resolves (row, col) through every strategy in the set, last
// first. The first unresolved step short-circuits.
// Complexity: O(len(set)).
func (set Set) Map(s matrix.Shape, row, col int) (int, int, bool) {
	shapes := set.shapes(s)
	for k := len(set) - 1; k >= 0; k-- {
		var ok bool
		row, col, ok = set[k].Map(shapes[k], row, col)
		if !ok {
			return 0, 0, false
		}
	}

	return row, col, true
}

// Rows returns the row count of the fully composed virtual shape.
func (set Set) Rows(s matrix.Shape) int {
	shapes := set.shapes(s)

	return shapes[len(set)].Rows()
}

// Cols returns the column count of the fully composed virtual shape.
func (set Set) Cols(s matrix.Shape) int {
	shapes := set.shapes(s)

	return shapes[len(set)].Cols()
}

var _ access.Strategy = Set{}
