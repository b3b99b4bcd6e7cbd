package geometry

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// Connect derives element-to-element and element-to-face adjacency for a
// mesh of K dim-simplices from its element-to-vertex table.
//
// etov holds, per element, the dim+1 global vertex indices of the simplex.
// Faces follow the canonical simplex face ordering of Simplex.Connectivity,
// so face f of an element is the f-th lexicographic dim-subset of its local
// vertices. Two element faces are adjacent when they reference the same
// global vertex set, found by matching rows of the sparse face-to-vertex
// incidence product FToV * FToV^T. Boundary faces map back to their own
// element and face.
func Connect(dim int, etov [][]int) (etoe, etof [][]int, err error) {
	if dim < 1 {
		return nil, nil, fmt.Errorf("mesh of %d-simplices: %w", dim, ErrIncoherentDimensions)
	}
	var (
		K      = len(etov)
		nFaces = dim + 1
		nfv    = dim // vertices per (dim-1)-face
		nv     = 0
	)
	if K == 0 {
		return [][]int{}, [][]int{}, nil
	}
	for k, verts := range etov {
		if len(verts) != dim+1 {
			return nil, nil, fmt.Errorf("element %d has %d vertices, a %d-simplex has %d: %w",
				k, len(verts), dim, dim+1, ErrIncoherentDimensions)
		}
		for _, v := range verts {
			if v < 0 {
				return nil, nil, fmt.Errorf("element %d references vertex %d: %w",
					k, v, ErrIncoherentDimensions)
			}
			if v+1 > nv {
				nv = v + 1
			}
		}
	}

	// Local face ordering from the reference simplex topology
	ref, err := NewSimplex(dim, dim, ReferenceCoords(dim))
	if err != nil {
		return nil, nil, err
	}
	localFaces := make([][]int, nFaces)
	for f := 0; f < nFaces; f++ {
		if localFaces[f], err = ref.Connectivity(0, dim-1, f); err != nil {
			return nil, nil, err
		}
	}

	totalFaces := nFaces * K
	fToV := sparse.NewDOK(totalFaces, nv)
	for k := 0; k < K; k++ {
		for f := 0; f < nFaces; f++ {
			for _, lv := range localFaces[f] {
				fToV.Set(k*nFaces+f, etov[k][lv], 1)
			}
		}
	}

	// fToF[i][j] counts shared vertices between global faces i and j; a
	// full count of nfv off the diagonal is a matching face pair
	fToVcsr := fToV.ToCSR()
	fToF := sparse.NewCSR(totalFaces, totalFaces, nil, nil, nil)
	fToF.Mul(fToVcsr, fToVcsr.T())

	etoe = make([][]int, K)
	etof = make([][]int, K)
	for k := 0; k < K; k++ {
		etoe[k] = make([]int, nFaces)
		etof[k] = make([]int, nFaces)
		for f := 0; f < nFaces; f++ {
			etoe[k][f] = k
			etof[k][f] = f
		}
	}
	fToF.DoNonZero(func(i, j int, v float64) {
		if i == j || int(v) != nfv {
			return
		}
		etoe[i/nFaces][i%nFaces] = j / nFaces
		etof[i/nFaces][i%nFaces] = j % nFaces
	})
	return etoe, etof, nil
}
