// Package geometry provides coordinate and connectivity descriptions of
// cell geometries, with the simplex as the concrete shape family.
package geometry

// Geometry provides coordinates and ordering describing a cell geometry.
type Geometry interface {
	// Dimension is the topological dimension of the geometry
	Dimension() int
	// EmbeddingDimension is the dimension of the embedding coordinate space
	EmbeddingDimension() int
	// NumElements returns the number of elements of topological dimension
	// dim in the geometry, zero when the geometry has none
	NumElements(dim int) int
	// Coordinates returns the embedding coordinates of the dimension 0
	// elements in AOS ordering. The slice is a borrowed view into storage
	// owned by the caller of the constructor, never a copy.
	Coordinates() []float64
	// Connectivity returns the vertex indices describing element
	// elementIndex of dimension elementDim, expressed through its
	// targetDim dimensional sub-elements
	Connectivity(targetDim, elementDim, elementIndex int) ([]int, error)
}
