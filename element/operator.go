package element

// Operator computes a discrete local matrix operator for one cell.
//
// Given the physical geometry of a cell (node coordinates in AOS ordering)
// and the per-field data attached to the cell, an Operator returns the
// flattened local matrix embodying the discretized operator. Concrete
// operators (mass, stiffness, advection, ...) are defined by solvers; this
// package only fixes the calling contract.
type Operator func(cellGeometry []float64, fieldData map[string][]float64) []float64

// OperatorBuilder constructs an Operator bound to the reference element
// supplying its precomputed shape and integration quantities.
type OperatorBuilder interface {
	// Element returns the reference element the operator is built against
	Element() Element
	// Operator returns the callable operator
	Operator() Operator
}
