package element

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrIncoherentDimensions is returned when two composed parts disagree on
// the dimension of the space they operate in.
var ErrIncoherentDimensions = errors.New("incoherent dimensions")

// Element provides the building blocks of a finite element reference
// element: a shape basis, an integration rule, and precomputed values of the
// shapes at the integration points. The geometry of the element is implicit
// in the basis and rule.
type Element interface {
	// Integrator returns the integration rule
	Integrator() IntegrationRule
	// ShapeBasis returns the shape basis
	ShapeBasis() ShapeBasis
	// ShapesForIntegration returns the basis values at the integration
	// points in AOS ordering and shape (NumPoints, NumBases, 1)
	ShapesForIntegration() []float64
	// ShapeDerivativesForIntegration returns the basis derivative values
	// at the integration points in AOS ordering and shape
	// (NumPoints, NumBases, DerivativeOrder)
	ShapeDerivativesForIntegration() []float64
	// GeometryDerivativesForIntegration returns the Jacobian matrices of
	// the geometry mapping at the integration points for an element whose
	// node coordinates are coords, in AOS ordering and shape
	// (NumPoints, NumDimensions, DerivativeOrder)
	GeometryDerivativesForIntegration(coords []float64) []float64
	// Integrate a field whose shape weights equal values
	Integrate(values []float64) float64
}

// ReferenceElement composes an integration rule with a shape basis and
// caches the basis values and derivatives at the rule's points. Both caches
// are built once at construction and never mutated, so one instance is safe
// for concurrent read use by per-cell workers.
type ReferenceElement struct {
	rule   IntegrationRule
	basis  ShapeBasis
	shapes []float64 // (P, B, 1)
	derivs []float64 // (P, B, D)
}

// NewReferenceElement builds the composite and precomputes the shape value
// and shape derivative tensors at the rule's points.
func NewReferenceElement(rule IntegrationRule, basis ShapeBasis) (*ReferenceElement, error) {
	if rule.Dimension() != basis.Dimension() {
		return nil, fmt.Errorf("rule dimension %d, basis dimension %d: %w",
			rule.Dimension(), basis.Dimension(), ErrIncoherentDimensions)
	}
	var (
		P   = rule.NumPoints()
		B   = basis.NumBases()
		D   = basis.DerivativeOrder()
		dim = rule.Dimension()
	)
	el := &ReferenceElement{
		rule:   rule,
		basis:  basis,
		shapes: make([]float64, 0, P*B),
		derivs: make([]float64, 0, P*B*D),
	}
	points := rule.Points()
	for q := 0; q < P; q++ {
		coord := points[q*dim : (q+1)*dim]
		el.shapes = append(el.shapes, basis.InterpolateBasis(coord)...)
		el.derivs = append(el.derivs, basis.InterpolateBasisDerivative(coord)...)
	}
	return el, nil
}

// NewLineElement builds the reference line segment [-1,1] with an order-N
// nodal Lagrange basis and the Gauss-Legendre rule exact for its mass
// matrix entries.
func NewLineElement(N int) (*ReferenceElement, error) {
	rule, err := NewGaussJacobi(0, 0, N)
	if err != nil {
		return nil, err
	}
	basis, err := NewLagrangeBasis1D(N)
	if err != nil {
		return nil, err
	}
	return NewReferenceElement(rule, basis)
}

// NewTriangleElement builds the reference triangle with the linear simplex
// basis and a collapsed-coordinate cubature of degree 2N+1.
func NewTriangleElement(N int) (*ReferenceElement, error) {
	rule, err := NewTriangleGauss(N)
	if err != nil {
		return nil, err
	}
	basis, err := NewLinearSimplexBasis(2)
	if err != nil {
		return nil, err
	}
	return NewReferenceElement(rule, basis)
}

func (el *ReferenceElement) Integrator() IntegrationRule { return el.rule }
func (el *ReferenceElement) ShapeBasis() ShapeBasis      { return el.basis }

func (el *ReferenceElement) ShapesForIntegration() []float64 { return el.shapes }

func (el *ReferenceElement) ShapeDerivativesForIntegration() []float64 { return el.derivs }

// GeometryDerivativesForIntegration computes, at each integration point, the
// Jacobian of the physical geometry mapping with respect to the reference
// coordinates:
//
//	J[q][x][d] = Sum_b coords[b][x] * dShape[q][b][d]
//
// coords holds the physical node coordinates in AOS ordering, one node per
// basis function; its length must be a multiple of NumBases.
func (el *ReferenceElement) GeometryDerivativesForIntegration(coords []float64) []float64 {
	var (
		P = el.rule.NumPoints()
		B = el.basis.NumBases()
		D = el.basis.DerivativeOrder()
	)
	if len(coords) == 0 || len(coords)%B != 0 {
		panic(fmt.Sprintf("geometry derivatives: %d coordinates for %d geometry nodes",
			len(coords), B))
	}
	nd := len(coords) / B
	out := make([]float64, P*nd*D)
	for q := 0; q < P; q++ {
		dShape := el.derivs[q*B*D : (q+1)*B*D]
		jac := out[q*nd*D : (q+1)*nd*D]
		for b := 0; b < B; b++ {
			for x := 0; x < nd; x++ {
				c := coords[b*nd+x]
				for d := 0; d < D; d++ {
					jac[x*D+d] += c * dShape[b*D+d]
				}
			}
		}
	}
	return out
}

// Integrate interpolates the nodal values to every integration point using
// the cached shape tensor, then applies the integration rule.
// len(values) must equal NumBases.
func (el *ReferenceElement) Integrate(values []float64) float64 {
	var (
		P = el.rule.NumPoints()
		B = el.basis.NumBases()
	)
	if len(values) != B {
		panic(fmt.Sprintf("element integrate: %d values for a %d function basis",
			len(values), B))
	}
	shapes := mat.NewDense(P, B, el.shapes)
	ipValues := mat.NewVecDense(P, nil)
	ipValues.MulVec(shapes, mat.NewVecDense(B, values))
	return Integrate(el.rule, ipValues.RawVector().Data)
}
