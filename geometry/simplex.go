package geometry

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

var (
	// ErrIncoherentDimensions is returned when the dimensions or point
	// buffer given to a constructor contradict each other.
	ErrIncoherentDimensions = errors.New("incoherent dimensions")
	// ErrDimensionOutOfRange is returned when a connectivity query names a
	// dimension above the topological dimension of the geometry.
	ErrDimensionOutOfRange = errors.New("dimension out of range")
	// ErrConnectivityUnavailable is returned when the requested
	// connectivity table was never computed.
	ErrConnectivityUnavailable = errors.New("connectivity unavailable")
)

type connKey struct {
	elementDim, targetDim int
}

type connTable struct {
	stride int
	data   []int
}

// Simplex is the geometry of a single n-simplex: n+1 vertices in an
// embedding space of dimension m >= n, plus the connectivity of every
// k-dimensional face derived from n alone.
//
// The point buffer is borrowed, never copied: it must outlive the Simplex
// and stays owned by the caller. Connectivity tables are owned by the
// Simplex, computed eagerly at construction, and immutable afterwards, so
// concurrent reads are safe.
type Simplex struct {
	dimension          int
	embeddingDimension int
	points             []float64
	connectivity       map[connKey]connTable
}

// NewSimplex builds the simplex of topological dimension dim embedded in
// dimension embedDim from a borrowed buffer of (dim+1)*embedDim vertex
// coordinates in AOS ordering.
func NewSimplex(dim, embedDim int, points []float64) (*Simplex, error) {
	if dim < 0 || embedDim < dim {
		return nil, fmt.Errorf("simplex dimension %d in embedding dimension %d: %w",
			dim, embedDim, ErrIncoherentDimensions)
	}
	if len(points) != (dim+1)*embedDim {
		return nil, fmt.Errorf("simplex with %d vertices of width %d needs %d coordinates, have %d: %w",
			dim+1, embedDim, (dim+1)*embedDim, len(points), ErrIncoherentDimensions)
	}
	sp := &Simplex{
		dimension:          dim,
		embeddingDimension: embedDim,
		points:             points,
		connectivity:       make(map[connKey]connTable),
	}
	for e := 0; e <= dim; e++ {
		for t := 0; t <= e; t++ {
			sp.computeAdjacency(e, t)
		}
	}
	return sp, nil
}

// computeAdjacency fills the (elementDim, targetDim) table, targetDim <=
// elementDim. Every elementDim face of the simplex is an increasing
// (elementDim+1)-combination of the vertex indices {0..n}, enumerated
// lexicographically to fix the face index. The row of one face is the
// lexicographic enumeration of its (targetDim+1)-subcombinations, each
// written as global vertex indices.
func (sp *Simplex) computeAdjacency(elementDim, targetDim int) {
	var (
		faces  = combin.Combinations(sp.dimension+1, elementDim+1)
		sub    = combin.Combinations(elementDim+1, targetDim+1)
		stride = len(sub) * (targetDim + 1)
	)
	data := make([]int, 0, len(faces)*stride)
	for _, face := range faces {
		for _, pick := range sub {
			for _, j := range pick {
				data = append(data, face[j])
			}
		}
	}
	sp.connectivity[connKey{elementDim, targetDim}] = connTable{stride: stride, data: data}
}

func (sp *Simplex) Dimension() int          { return sp.dimension }
func (sp *Simplex) EmbeddingDimension() int { return sp.embeddingDimension }

// Coordinates returns the borrowed vertex coordinate buffer, unchanged from
// construction.
func (sp *Simplex) Coordinates() []float64 { return sp.points }

// NumElements returns the number of dim-dimensional faces, C(n+1, dim+1).
// Dimensions above the simplex's own are a normal zero-count answer, not an
// error.
func (sp *Simplex) NumElements(dim int) int {
	if dim < 0 || dim > sp.dimension {
		return 0
	}
	return combin.Binomial(sp.dimension+1, dim+1)
}

// Connectivity returns the row of face elementIndex of dimension
// elementDim, expressed via its targetDim-dimensional sub-faces as global
// vertex indices. The returned slice aliases the internal table and must
// not be modified.
func (sp *Simplex) Connectivity(targetDim, elementDim, elementIndex int) ([]int, error) {
	if targetDim > sp.dimension || elementDim > sp.dimension || targetDim < 0 || elementDim < 0 {
		return nil, fmt.Errorf("connectivity (%d, %d) on a %d-simplex: %w",
			targetDim, elementDim, sp.dimension, ErrDimensionOutOfRange)
	}
	table, ok := sp.connectivity[connKey{elementDim, targetDim}]
	if !ok {
		return nil, fmt.Errorf("connectivity of %d-faces via %d-faces: %w",
			elementDim, targetDim, ErrConnectivityUnavailable)
	}
	if n := sp.NumElements(elementDim); elementIndex < 0 || elementIndex >= n {
		panic(fmt.Sprintf("face index %d out of range, %d-simplex has %d %d-faces",
			elementIndex, sp.dimension, n, elementDim))
	}
	return table.data[elementIndex*table.stride : (elementIndex+1)*table.stride], nil
}

// ReferenceCoords returns the vertex coordinates of the reference
// dim-simplex embedded in its own dimension: v0 = (-1,...,-1) and
// vi = v0 + 2*ei, AOS ordering.
func ReferenceCoords(dim int) []float64 {
	coords := make([]float64, (dim+1)*dim)
	for i := range coords {
		coords[i] = -1
	}
	for v := 1; v <= dim; v++ {
		coords[v*dim+v-1] = 1
	}
	return coords
}
