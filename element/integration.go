// Package element provides the building blocks of the finite element
// reference element: exact Jacobi polynomials, integration rules, shape
// bases and their composition into reference elements.
package element

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// IntegrationRule provides weights and points for discrete integration.
//
// Discrete integration is expressed as a dot product between integration
// weights and values of the integrand at specific points in the integration
// space. The combination of weights and points is a quadrature (1D) or
// cubature (2D/3D) rule.
type IntegrationRule interface {
	// Dimension is the dimension of the point space
	Dimension() int
	// Weights returns the integration weights, one per point
	Weights() []float64
	// Points returns the point coordinates in AOS ordering,
	// NumPoints x Dimension
	Points() []float64
	// NumPoints returns the number of individual weights
	NumPoints() int
}

// Integrate computes the weighted sum of values sampled at the rule's
// points. len(values) must equal rule.NumPoints() - a mismatch is a caller
// programming error and panics rather than silently corrupting the result.
func Integrate(rule IntegrationRule, values []float64) float64 {
	w := rule.Weights()
	if len(values) != len(w) {
		panic(fmt.Sprintf("integrate: %d values for a %d point rule",
			len(values), len(w)))
	}
	return floats.Dot(w, values)
}
