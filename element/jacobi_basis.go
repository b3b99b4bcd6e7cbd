package element

// JacobiBasis1D is the modal 1D shape basis whose i-th member is the exact
// Jacobi polynomial of degree i with fixed (alpha, beta). Modal coefficients
// weight whole polynomials rather than nodal values, so this basis does not
// form a partition of unity.
type JacobiBasis1D struct {
	order int
	polys []*Jacobi
}

// NewJacobiBasis1D builds the order+1 member modal basis
// {P_0^{a,b}, ..., P_order^{a,b}}.
func NewJacobiBasis1D(order, alpha, beta int) (*JacobiBasis1D, error) {
	polys := make([]*Jacobi, order+1)
	for i := 0; i <= order; i++ {
		jp, err := NewJacobi(i, alpha, beta)
		if err != nil {
			return nil, err
		}
		polys[i] = jp
	}
	return &JacobiBasis1D{order: order, polys: polys}, nil
}

func (jb *JacobiBasis1D) Dimension() int       { return 1 }
func (jb *JacobiBasis1D) DerivativeOrder() int { return 1 }
func (jb *JacobiBasis1D) NumBases() int        { return jb.order + 1 }

func (jb *JacobiBasis1D) InterpolateBasis(coord []float64) []float64 {
	checkCoord(1, coord)
	shapes := make([]float64, len(jb.polys))
	for i, jp := range jb.polys {
		shapes[i] = jp.Evaluate(coord[0])
	}
	return shapes
}

func (jb *JacobiBasis1D) InterpolateBasisDerivative(coord []float64) []float64 {
	checkCoord(1, coord)
	derivs := make([]float64, len(jb.polys))
	for i, jp := range jb.polys {
		derivs[i] = jp.EvaluateDeriv(coord[0])
	}
	return derivs
}
