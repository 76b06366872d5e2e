package csvvalue

import "github.com/samber/lo"

// Visitor computes a result from a cell.
type Visitor[R any] interface {
	Visit(c Cell) R
}

// VoidVisitor performs a side effect for each cell it visits.
type VoidVisitor interface {
	Visit(c Cell)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc[R any] func(c Cell) R

// Visit implements Visitor.
func (f VisitorFunc[R]) Visit(c Cell) R { return f(c) }

// Apply calls visitor with c and returns its result.
func Apply[R any](c Cell, visitor Visitor[R]) R {
	return visitor.Visit(c)
}

// ApplyAll applies visitor to every cell, in order.
func ApplyAll[R any](cells []Cell, visitor Visitor[R]) []R {
	return lo.Map(cells, func(c Cell, _ int) R {
		return visitor.Visit(c)
	})
}

// WalkAll calls visitor with every cell, in order.
func WalkAll(cells []Cell, visitor VoidVisitor) {
	lo.ForEach(cells, func(c Cell, _ int) {
		visitor.Visit(c)
	})
}
