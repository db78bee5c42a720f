// Package access: Observer, a dimension-only stand-in matrix.

package access

import "github.com/tcheufa/matrixable/matrix"

// Observer carries nothing but a shape. Strategy chains are resolved
// against Observers so that the shape effect of a whole composition can
// be computed without ever touching element data.
//
// Observer is a value type: Update returns a new Observer rather than
// mutating, which keeps prefix-shape folds over strategy sequences free
// of aliasing.
type Observer struct {
	rows, cols int
}

// NewObserver returns an Observer of the given dimensions.
func NewObserver(rows, cols int) Observer {
	return Observer{rows: rows, cols: cols}
}

// ObserverOf captures the shape of s.
func ObserverOf(s matrix.Shape) Observer {
	return Observer{rows: s.Rows(), cols: s.Cols()}
}

// Rows returns the observed row count.
func (o Observer) Rows() int { return o.rows }

// Cols returns the observed column count.
func (o Observer) Cols() int { return o.cols }

// Update returns the virtual shape that s would present over o.
func (o Observer) Update(s Strategy) Observer {
	return Observer{rows: s.Rows(o), cols: s.Cols(o)}
}
