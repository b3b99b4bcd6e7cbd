package element

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrInvalidParameter is returned when a polynomial family is requested with
// parameters outside its domain of definition.
var ErrInvalidParameter = errors.New("invalid polynomial parameter")

// Jacobi is a single member of the Jacobi orthogonal polynomial family
// P_n^{alpha,beta}, held with exact integer coefficients.
//
// The combinatorial coefficients C(n+alpha,k)*C(n+beta,n-k) grow past the
// float64 mantissa well before high degree, so they are computed with
// big.Int at construction and only converted to float64 during evaluation.
type Jacobi struct {
	degree      int
	alpha, beta int
	coeffs      []*big.Int
	normalizer  float64
	deriv       *Jacobi // degree-1, alpha+1, beta+1 member, nil for degree 0
}

// NewJacobi constructs the degree-degree Jacobi polynomial with parameters
// (alpha, beta). Both parameters must be >= -1.
func NewJacobi(degree, alpha, beta int) (*Jacobi, error) {
	if degree < 0 {
		return nil, fmt.Errorf("jacobi degree %d: %w", degree, ErrInvalidParameter)
	}
	if alpha < -1 || beta < -1 {
		return nil, fmt.Errorf("jacobi alpha=%d, beta=%d must both be >= -1: %w",
			alpha, beta, ErrInvalidParameter)
	}
	jp := makeJacobi(degree, alpha, beta)
	if degree > 0 {
		jp.deriv = makeJacobi(degree-1, alpha+1, beta+1)
	}
	return jp, nil
}

func makeJacobi(degree, alpha, beta int) *Jacobi {
	coeffs := make([]*big.Int, degree+1)
	for k := 0; k <= degree; k++ {
		c := new(big.Int).Binomial(int64(degree+alpha), int64(k))
		c.Mul(c, new(big.Int).Binomial(int64(degree+beta), int64(degree-k)))
		coeffs[k] = c
	}
	return &Jacobi{
		degree:     degree,
		alpha:      alpha,
		beta:       beta,
		coeffs:     coeffs,
		normalizer: 1. / math.Pow(2, float64(degree)),
	}
}

// Degree returns the polynomial degree
func (jp *Jacobi) Degree() int { return jp.degree }

// Alpha returns the first Jacobi parameter
func (jp *Jacobi) Alpha() int { return jp.alpha }

// Beta returns the second Jacobi parameter
func (jp *Jacobi) Beta() int { return jp.beta }

// Evaluate returns P_n^{alpha,beta}(x).
//
// The sum runs over ascending k so that callers relying on a fixed
// rounding pattern see the same result on every platform:
//
//	P(x) = 2^-n * Sum_k coeff[k] * (x-1)^(n-k) * (x+1)^k
func (jp *Jacobi) Evaluate(x float64) (p float64) {
	for k := 0; k <= jp.degree; k++ {
		c, _ := new(big.Float).SetInt(jp.coeffs[k]).Float64()
		m := math.Pow(x-1., float64(jp.degree-k)) * math.Pow(x+1., float64(k))
		p += m * c
	}
	return p * jp.normalizer
}

// EvaluateDeriv returns d/dx P_n^{alpha,beta}(x) using the identity
//
//	d/dx P_n^{a,b} = (n+a+b+1)/2 * P_{n-1}^{a+1,b+1}
func (jp *Jacobi) EvaluateDeriv(x float64) float64 {
	if jp.degree == 0 {
		return 0
	}
	fac := 0.5 * float64(jp.degree+jp.alpha+jp.beta+1)
	return fac * jp.deriv.Evaluate(x)
}
