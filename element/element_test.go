package element

import (
	"testing"

	"github.com/notargets/femcore/utils"
	"github.com/stretchr/testify/assert"
)

func TestReferenceElementDimensionCheck(t *testing.T) {
	rule, _ := NewTriangleGauss(2)
	basis, _ := NewLinearSimplexBasis(1)
	_, err := NewReferenceElement(rule, basis)
	assert.ErrorIs(t, err, ErrIncoherentDimensions)
}

func TestReferenceElementCachedTensors(t *testing.T) {
	el, err := NewTriangleElement(3)
	assert.NoError(t, err)
	var (
		rule  = el.Integrator()
		basis = el.ShapeBasis()
		P     = rule.NumPoints()
		B     = basis.NumBases()
		D     = basis.DerivativeOrder()
	)
	shapes := el.ShapesForIntegration()
	derivs := el.ShapeDerivativesForIntegration()
	assert.Equal(t, P*B, len(shapes))
	assert.Equal(t, P*B*D, len(derivs))

	// re-evaluating the basis at every integration point reproduces the
	// cached tensors exactly
	points := rule.Points()
	for q := 0; q < P; q++ {
		coord := points[q*2 : (q+1)*2]
		assert.Equal(t, basis.InterpolateBasis(coord), shapes[q*B:(q+1)*B])
		assert.Equal(t, basis.InterpolateBasisDerivative(coord), derivs[q*B*D:(q+1)*B*D])
	}
}

func TestLineElementIntegrate(t *testing.T) {
	for N := 1; N <= 4; N++ {
		el, err := NewLineElement(N)
		assert.NoError(t, err)
		B := el.ShapeBasis().NumBases()

		// constant field integrates to the segment measure
		assert.True(t, near(el.Integrate(utils.ConstArray(B, 1)), 2))

		// nodal values of x^2 integrate to 2/3 for N >= 2
		if N >= 2 {
			lb := el.ShapeBasis().(*LagrangeBasis1D)
			values := make([]float64, B)
			for i, r := range lb.Nodes() {
				values[i] = r * r
			}
			assert.True(t, near(el.Integrate(values), 2./3.))
		}

		assert.Panics(t, func() { el.Integrate(utils.ConstArray(B+1, 1)) })
	}
}

func TestTriangleElementIntegrate(t *testing.T) {
	el, err := NewTriangleElement(2)
	assert.NoError(t, err)
	assert.True(t, near(el.Integrate([]float64{1, 1, 1}), 2))

	// linear field r: vertex values (-1, 1, -1), integral -2/3
	assert.True(t, near(el.Integrate([]float64{-1, 1, -1}), -2./3.))
}

func TestGeometryDerivatives(t *testing.T) {
	// line [-1,1] mapped to [0,3]: dx/dr = 3/2 at every point
	el, _ := NewLineElement(2)
	lb := el.ShapeBasis().(*LagrangeBasis1D)
	coords := make([]float64, lb.NumBases())
	for i, r := range lb.Nodes() {
		coords[i] = 1.5 * (r + 1)
	}
	var (
		P = el.Integrator().NumPoints()
		D = el.ShapeBasis().DerivativeOrder()
	)
	jac := el.GeometryDerivativesForIntegration(coords)
	assert.Equal(t, P*1*D, len(jac))
	for _, j := range jac {
		assert.InDelta(t, 1.5, j, 1.e-09)
	}

	// affine triangle (0,0), (2,0), (0,4): J = [[1, 0], [0, 2]]
	tri, _ := NewTriangleElement(2)
	triCoords := []float64{0, 0, 2, 0, 0, 4}
	P = tri.Integrator().NumPoints()
	jac = tri.GeometryDerivativesForIntegration(triCoords)
	assert.Equal(t, P*2*2, len(jac))
	for q := 0; q < P; q++ {
		J := jac[q*4 : (q+1)*4]
		assert.InDelta(t, 1, J[0], 1.e-12)
		assert.InDelta(t, 0, J[1], 1.e-12)
		assert.InDelta(t, 0, J[2], 1.e-12)
		assert.InDelta(t, 2, J[3], 1.e-12)
	}

	assert.Panics(t, func() { tri.GeometryDerivativesForIntegration(triCoords[:5]) })
}
