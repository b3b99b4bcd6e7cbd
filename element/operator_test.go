package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// massBuilder builds the local mass matrix operator for 1D affine cells:
// M_ij = integral of phi_i phi_j over the physical cell. It is the smallest
// real operator and exercises the full Element contract the way a solver
// would.
type massBuilder struct {
	el Element
}

func (mb massBuilder) Element() Element { return mb.el }

func (mb massBuilder) Operator() Operator {
	var (
		rule    = mb.el.Integrator()
		weights = rule.Weights()
		P       = rule.NumPoints()
		B       = mb.el.ShapeBasis().NumBases()
		shapes  = mb.el.ShapesForIntegration()
	)
	return func(cellGeometry []float64, fieldData map[string][]float64) []float64 {
		jac := mb.el.GeometryDerivativesForIntegration(cellGeometry)
		m := make([]float64, B*B)
		for q := 0; q < P; q++ {
			detJ := jac[q] // 1D affine cell: J is the 1x1 stretch factor
			wq := weights[q] * detJ
			sq := shapes[q*B : (q+1)*B]
			for i := 0; i < B; i++ {
				for j := 0; j < B; j++ {
					m[i*B+j] += wq * sq[i] * sq[j]
				}
			}
		}
		return m
	}
}

func TestMassOperator(t *testing.T) {
	el, err := NewLineElement(1)
	assert.NoError(t, err)

	var mb OperatorBuilder = massBuilder{el: el}
	assert.Equal(t, el, mb.Element())
	mass := mb.Operator()

	// P1 mass matrix on a cell of length L is L/6 * [[2,1],[1,2]]
	L := 3.
	m := mass([]float64{0, L}, nil)
	assert.Equal(t, 4, len(m))
	assert.InDelta(t, L/3, m[0], 1.e-10)
	assert.InDelta(t, L/6, m[1], 1.e-10)
	assert.InDelta(t, L/6, m[2], 1.e-10)
	assert.InDelta(t, L/3, m[3], 1.e-10)
}

// weightedMass scales the integrand by a named per-node field, showing the
// fieldData side of the contract.
func TestOperatorFieldData(t *testing.T) {
	el, err := NewLineElement(1)
	assert.NoError(t, err)
	var (
		rule    = el.Integrator()
		weights = rule.Weights()
		B       = el.ShapeBasis().NumBases()
		shapes  = el.ShapesForIntegration()
	)
	var weighted Operator = func(cellGeometry []float64, fieldData map[string][]float64) []float64 {
		var (
			rho = fieldData["density"]
			jac = el.GeometryDerivativesForIntegration(cellGeometry)
			m   = make([]float64, B*B)
		)
		for q := 0; q < rule.NumPoints(); q++ {
			sq := shapes[q*B : (q+1)*B]
			rhoQ := 0.
			for b := 0; b < B; b++ {
				rhoQ += sq[b] * rho[b]
			}
			wq := weights[q] * jac[q] * rhoQ
			for i := 0; i < B; i++ {
				for j := 0; j < B; j++ {
					m[i*B+j] += wq * sq[i] * sq[j]
				}
			}
		}
		return m
	}

	// constant density 1 reduces to the plain mass matrix
	m := weighted([]float64{0, 2}, map[string][]float64{"density": {1, 1}})
	assert.InDelta(t, 2./3., m[0], 1.e-10)
	assert.InDelta(t, 1./3., m[1], 1.e-10)
}
