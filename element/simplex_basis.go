package element

import "fmt"

// LinearSimplexBasis is the P1 barycentric shape basis on the reference
// n-simplex with vertices v0 = (-1,...,-1) and vi = v0 + 2*ei.
//
// The basis functions are the barycentric coordinates
//
//	L0 = 1 - Sum_i (x_i+1)/2,  Li = (x_i+1)/2
//
// so there are dim+1 of them, they sum to one everywhere, and their
// derivatives are constant over the element.
type LinearSimplexBasis struct {
	dim int
}

// NewLinearSimplexBasis builds the linear basis on the dim-simplex.
func NewLinearSimplexBasis(dim int) (*LinearSimplexBasis, error) {
	if dim < 1 {
		return nil, fmt.Errorf("simplex basis dimension %d must be >= 1: %w",
			dim, ErrInvalidParameter)
	}
	return &LinearSimplexBasis{dim: dim}, nil
}

func (lb *LinearSimplexBasis) Dimension() int       { return lb.dim }
func (lb *LinearSimplexBasis) DerivativeOrder() int { return lb.dim }
func (lb *LinearSimplexBasis) NumBases() int        { return lb.dim + 1 }

func (lb *LinearSimplexBasis) InterpolateBasis(coord []float64) []float64 {
	checkCoord(lb.dim, coord)
	shapes := make([]float64, lb.dim+1)
	shapes[0] = 1
	for i, x := range coord {
		li := 0.5 * (x + 1.)
		shapes[i+1] = li
		shapes[0] -= li
	}
	return shapes
}

func (lb *LinearSimplexBasis) InterpolateBasisDerivative(coord []float64) []float64 {
	checkCoord(lb.dim, coord)
	derivs := make([]float64, (lb.dim+1)*lb.dim)
	for d := 0; d < lb.dim; d++ {
		derivs[d] = -0.5 // dL0/dx_d
	}
	for b := 1; b <= lb.dim; b++ {
		derivs[b*lb.dim+b-1] = 0.5
	}
	return derivs
}
