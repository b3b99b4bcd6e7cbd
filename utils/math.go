package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	y = 1
	for i := 0; i < p; i++ {
		y *= x
	}
	if flipped {
		y = 1. / y
	}
	return
}

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from its main
// diagonal d0 and first super/sub diagonal d1, len(d1) == len(d0)-1.
func NewSymTriDiagonal(d0, d1 []float64) (M *mat.SymBandDense) {
	if len(d1) != len(d0)-1 {
		panic("inconsistent diagonal lengths for tridiagonal matrix")
	}
	n := len(d0)
	// SymBandDense stores rows of bandwidth+1 entries, diagonal first
	data := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		data[2*i] = d0[i]
		if i < n-1 {
			data[2*i+1] = d1[i]
		}
	}
	M = mat.NewSymBandDense(n, 1, data)
	return
}
