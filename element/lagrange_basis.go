package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LagrangeBasis1D is the nodal 1D shape basis of order N on the N+1
// Gauss-Lobatto points of [-1,1]. Each basis function is one at its own
// node and zero at every other, so nodal coefficients are point values of
// the field and the basis forms a partition of unity.
//
// The Lagrange functions are evaluated through the modal Jacobi basis:
// with Vandermonde V_ij = P_j(r_i), the nodal values at x are
//
//	l(x)^T = p(x)^T * Vinv
//
// which is exact for any polynomial through degree N.
type LagrangeBasis1D struct {
	order int
	nodes []float64
	modal *JacobiBasis1D
	vInv  *mat.Dense
}

// NewLagrangeBasis1D builds the order-N nodal basis, N >= 1.
func NewLagrangeBasis1D(N int) (*LagrangeBasis1D, error) {
	if N < 1 {
		return nil, fmt.Errorf("lagrange basis order %d must be >= 1: %w",
			N, ErrInvalidParameter)
	}
	nodes, err := GaussLobattoPoints(0, 0, N)
	if err != nil {
		return nil, err
	}
	modal, err := NewJacobiBasis1D(N, 0, 0)
	if err != nil {
		return nil, err
	}
	V := mat.NewDense(N+1, N+1, nil)
	for i, r := range nodes {
		V.SetRow(i, modal.InterpolateBasis([]float64{r}))
	}
	vInv := mat.NewDense(N+1, N+1, nil)
	if err = vInv.Inverse(V); err != nil {
		return nil, fmt.Errorf("vandermonde inversion for order %d: %w", N, err)
	}
	return &LagrangeBasis1D{order: N, nodes: nodes, modal: modal, vInv: vInv}, nil
}

func (lb *LagrangeBasis1D) Dimension() int       { return 1 }
func (lb *LagrangeBasis1D) DerivativeOrder() int { return 1 }
func (lb *LagrangeBasis1D) NumBases() int        { return lb.order + 1 }

// Nodes returns the interpolation nodes in ascending order
func (lb *LagrangeBasis1D) Nodes() []float64 { return lb.nodes }

func (lb *LagrangeBasis1D) InterpolateBasis(coord []float64) []float64 {
	return lb.nodalRow(lb.modal.InterpolateBasis(coord))
}

func (lb *LagrangeBasis1D) InterpolateBasisDerivative(coord []float64) []float64 {
	return lb.nodalRow(lb.modal.InterpolateBasisDerivative(coord))
}

func (lb *LagrangeBasis1D) nodalRow(p []float64) []float64 {
	np := lb.order + 1
	out := mat.NewVecDense(np, nil)
	out.MulVec(lb.vInv.T(), mat.NewVecDense(np, p))
	return out.RawVector().Data
}
