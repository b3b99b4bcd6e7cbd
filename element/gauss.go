package element

import (
	"fmt"
	"math"

	"github.com/notargets/femcore/utils"
	"gonum.org/v1/gonum/mat"
)

// GaussRule is a concrete IntegrationRule backed by precomputed point and
// weight slices. Immutable once built.
type GaussRule struct {
	dim     int
	weights []float64
	points  []float64 // AOS, NumPoints x dim
}

func (q *GaussRule) Dimension() int     { return q.dim }
func (q *GaussRule) Weights() []float64 { return q.weights }
func (q *GaussRule) Points() []float64  { return q.points }
func (q *GaussRule) NumPoints() int     { return len(q.weights) }

// NewGaussJacobi builds the N+1 point Gauss quadrature rule for the weight
// function (1-x)^alpha * (1+x)^beta on [-1,1].
//
// Nodes and weights come from the Golub-Welsch algorithm: the nodes are the
// eigenvalues of the symmetric tridiagonal Jacobi matrix of the recurrence,
// the weights the squared first components of its eigenvectors scaled by the
// integral of the weight function.
func NewGaussJacobi(alpha, beta float64, N int) (*GaussRule, error) {
	if alpha <= -1 || beta <= -1 {
		return nil, fmt.Errorf("gauss-jacobi alpha=%g, beta=%g must both be > -1: %w",
			alpha, beta, ErrInvalidParameter)
	}
	if N < 0 {
		return nil, fmt.Errorf("gauss-jacobi order %d: %w", N, ErrInvalidParameter)
	}
	if N == 0 {
		return &GaussRule{
			dim:     1,
			points:  []float64{-(alpha - beta) / (alpha + beta + 2.)},
			weights: []float64{gamma0(alpha, beta)},
		}, nil
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: -1/2*(alpha^2-beta^2)./(h1+2)./h1
	d0 := make([]float64, N+1)
	fac := -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) /
			((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x := eig.Values(nil)

	VVr := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	w := make([]float64, len(x))
	g0 := gamma0(alpha, beta)
	for i := range w {
		v := VVr.At(0, i)
		w[i] = v * v * g0
	}
	return &GaussRule{dim: 1, points: x, weights: w}, nil
}

// GaussLobattoPoints returns the N+1 Gauss-Lobatto-Jacobi nodes on [-1,1]:
// both endpoints plus the interior Gauss nodes of the (alpha+1, beta+1)
// weight. Used for nodal basis placement, not integration.
func GaussLobattoPoints(alpha, beta float64, N int) ([]float64, error) {
	if N < 1 {
		return nil, fmt.Errorf("gauss-lobatto order %d must be >= 1: %w", N, ErrInvalidParameter)
	}
	x := make([]float64, N+1)
	x[0] = -1
	x[N] = 1
	if N == 1 {
		return x, nil
	}
	interior, err := NewGaussJacobi(alpha+1, beta+1, N-2)
	if err != nil {
		return nil, err
	}
	copy(x[1:N], interior.Points())
	return x, nil
}

// NewTriangleGauss builds a cubature rule on the reference triangle
// {(r,s): r >= -1, s >= -1, r+s <= 0} exact for polynomials of total degree
// 2N+1.
//
// The rule is a collapsed-coordinate tensor product: Gauss-Legendre in the
// first direction, Gauss-Jacobi(1,0) in the second to absorb the (1-b)/2
// area factor of the Duffy map
//
//	r = (1+a)(1-b)/2 - 1,  s = b,  w = wa*wb/2
func NewTriangleGauss(N int) (*GaussRule, error) {
	ga, err := NewGaussJacobi(0, 0, N)
	if err != nil {
		return nil, err
	}
	gb, err := NewGaussJacobi(1, 0, N)
	if err != nil {
		return nil, err
	}
	na, nb := ga.NumPoints(), gb.NumPoints()
	points := make([]float64, 0, 2*na*nb)
	weights := make([]float64, 0, na*nb)
	for j := 0; j < nb; j++ {
		b := gb.Points()[j]
		for i := 0; i < na; i++ {
			a := ga.Points()[i]
			r := 0.5*(1.+a)*(1.-b) - 1.
			points = append(points, r, b)
			weights = append(weights, 0.5*ga.Weights()[i]*gb.Weights()[j])
		}
	}
	return &GaussRule{dim: 2, points: points, weights: weights}, nil
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}
