package element

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ShapeBasis provides basis shape functions for describing fields inside
// elements.
//
// In the finite element method, fields are encoded into arrays using element
// level basis functions called shape functions. An implementation provides a
// distinct set of shape functions through the ability to interpolate their
// values at a given coordinate inside the element.
type ShapeBasis interface {
	// Dimension is the dimension of the space the shapes are defined on
	Dimension() int
	// DerivativeOrder is the number of values describing one shape
	// function derivative, normally equal to Dimension
	DerivativeOrder() int
	// NumBases returns the number of basis functions
	NumBases() int
	// InterpolateBasis evaluates all basis functions at coord,
	// returning NumBases values
	InterpolateBasis(coord []float64) []float64
	// InterpolateBasisDerivative evaluates all basis function derivatives
	// at coord, returning NumBases x DerivativeOrder values in basis-major
	// AOS ordering
	InterpolateBasisDerivative(coord []float64) []float64
}

// Interpolate evaluates the field with nodal coefficients values at coord.
// len(values) must equal sb.NumBases().
func Interpolate(sb ShapeBasis, coord, values []float64) float64 {
	shapes := sb.InterpolateBasis(coord)
	if len(values) != len(shapes) {
		panic(fmt.Sprintf("interpolate: %d values for a %d function basis",
			len(values), len(shapes)))
	}
	return floats.Dot(shapes, values)
}

// InterpolateDerivative evaluates the derivative of the field with nodal
// coefficients values at coord, returning sb.DerivativeOrder() values. The
// result is the 1 x B row of values times the B x D derivative matrix.
func InterpolateDerivative(sb ShapeBasis, coord, values []float64) []float64 {
	var (
		B = sb.NumBases()
		D = sb.DerivativeOrder()
	)
	if len(values) != B {
		panic(fmt.Sprintf("interpolate derivative: %d values for a %d function basis",
			len(values), B))
	}
	derivs := mat.NewDense(B, D, sb.InterpolateBasisDerivative(coord))
	out := mat.NewVecDense(D, nil)
	out.MulVec(derivs.T(), mat.NewVecDense(B, values))
	return out.RawVector().Data
}

func checkCoord(dim int, coord []float64) {
	if len(coord) != dim {
		panic(fmt.Sprintf("coordinate has %d components, space has dimension %d",
			len(coord), dim))
	}
}
