package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectTwoTriangles(t *testing.T) {
	// the unit square split along its diagonal: elements (0,1,2) and
	// (1,3,2) share the edge {1,2}
	etov := [][]int{{0, 1, 2}, {1, 3, 2}}
	etoe, etof, err := Connect(2, etov)
	assert.NoError(t, err)

	// element 0 local faces: (0,1), (0,2), (1,2) - only the last is shared
	assert.Equal(t, []int{0, 0, 1}, etoe[0])
	assert.Equal(t, []int{0, 1, 1}, etof[0])

	// element 1 local faces: (1,3), (1,2), (3,2) - the middle is shared
	assert.Equal(t, []int{1, 0, 1}, etoe[1])
	assert.Equal(t, []int{0, 2, 2}, etof[1])
}

func TestConnectSegmentChain(t *testing.T) {
	// three segments in a row: 0-1, 1-2, 2-3
	etov := [][]int{{0, 1}, {1, 2}, {2, 3}}
	etoe, etof, err := Connect(1, etov)
	assert.NoError(t, err)

	// local faces of a segment are its two endpoints
	assert.Equal(t, []int{0, 1}, etoe[0]) // left end is boundary
	assert.Equal(t, []int{0, 0}, etof[0])
	assert.Equal(t, []int{0, 2}, etoe[1])
	assert.Equal(t, []int{1, 0}, etof[1])
	assert.Equal(t, []int{1, 2}, etoe[2])
	assert.Equal(t, []int{1, 1}, etof[2])
}

func TestConnectTetPair(t *testing.T) {
	// two tetrahedra sharing the face {1,2,3}
	etov := [][]int{{0, 1, 2, 3}, {1, 2, 3, 4}}
	etoe, etof, err := Connect(3, etov)
	assert.NoError(t, err)

	// element 0 face 3 is (1,2,3); element 1 face 0 is (1,2,3)
	assert.Equal(t, []int{0, 0, 0, 1}, etoe[0])
	assert.Equal(t, []int{0, 1, 2, 0}, etof[0])
	assert.Equal(t, []int{0, 1, 1, 1}, etoe[1])
	assert.Equal(t, []int{3, 1, 2, 3}, etof[1])
}

func TestConnectValidation(t *testing.T) {
	_, _, err := Connect(0, nil)
	assert.ErrorIs(t, err, ErrIncoherentDimensions)

	_, _, err = Connect(2, [][]int{{0, 1}})
	assert.ErrorIs(t, err, ErrIncoherentDimensions)

	_, _, err = Connect(2, [][]int{{0, 1, -4}})
	assert.ErrorIs(t, err, ErrIncoherentDimensions)
}
