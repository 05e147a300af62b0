package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/meshfield/arrays"
	"github.com/notargets/meshfield/utils"
)

// UMesh represents an unstructured mesh, connectivity stored explicitly
type UMesh struct {
	name          string
	meshDimension int

	Coords       *arrays.LabeledArray // Node coordinates [nnodes][spacedim]
	Connectivity [][]int              // Element to vertex connectivity [nelems][nverts_per_elem]
	CellTypes    []ElementType        // Element type for each element
}

func NewUMesh(name string, meshDimension int, coords *arrays.LabeledArray) *UMesh {
	return &UMesh{
		name:          name,
		meshDimension: meshDimension,
		Coords:        coords,
	}
}

// InsertCell appends a cell and returns its id
func (um *UMesh) InsertCell(et ElementType, verts ...int) (id int, err error) {
	if !et.Valid() {
		return -1, fmt.Errorf("InsertCell: unknown element %s: %w", et, ErrConnectivity)
	}
	if len(verts) != et.NumVertices() {
		return -1, fmt.Errorf("InsertCell: %s needs %d vertices, got %d: %w",
			et, et.NumVertices(), len(verts), ErrConnectivity)
	}
	um.Connectivity = append(um.Connectivity, append([]int(nil), verts...))
	um.CellTypes = append(um.CellTypes, et)
	return len(um.Connectivity) - 1, nil
}

func (um *UMesh) Name() string       { return um.name }
func (um *UMesh) MeshDimension() int { return um.meshDimension }
func (um *UMesh) NumberOfCells() int { return len(um.Connectivity) }

func (um *UMesh) SpaceDimension() int {
	if um.Coords == nil {
		return 0
	}
	_, nc := um.Coords.Dims()
	return nc
}

func (um *UMesh) NumberOfNodes() int {
	if um.Coords == nil {
		return 0
	}
	nr, _ := um.Coords.Dims()
	return nr
}

func (um *UMesh) Coordinates() (*arrays.LabeledArray, error) {
	if um.Coords == nil {
		return nil, fmt.Errorf("Coordinates: %w", ErrNoCoords)
	}
	return um.Coords.Copy(), nil
}

// CheckConsistency verifies that every cell has the vertex count of its type
// and references existing nodes only
func (um *UMesh) CheckConsistency() (err error) {
	var (
		nNodes = um.NumberOfNodes()
	)
	if um.Coords == nil {
		return fmt.Errorf("CheckConsistency: %w", ErrNoCoords)
	}
	if len(um.CellTypes) != len(um.Connectivity) {
		return fmt.Errorf("CheckConsistency: %d cell types for %d cells: %w",
			len(um.CellTypes), len(um.Connectivity), ErrConnectivity)
	}
	for k, verts := range um.Connectivity {
		if !um.CellTypes[k].Valid() {
			return fmt.Errorf("CheckConsistency: cell %d has unknown element %s: %w",
				k, um.CellTypes[k], ErrConnectivity)
		}
		if len(verts) != um.CellTypes[k].NumVertices() {
			return fmt.Errorf("CheckConsistency: cell %d (%s) has %d vertices: %w",
				k, um.CellTypes[k], len(verts), ErrConnectivity)
		}
		for _, v := range verts {
			if v < 0 || v >= nNodes {
				return fmt.Errorf("CheckConsistency: cell %d references node %d of %d: %w",
					k, v, nNodes, ErrConnectivity)
			}
		}
	}
	return
}

/*
Incidence returns the cells x nodes averaging operator: row k holds 1/nv in
the columns of the nv vertices of cell k, so Incidence * Coords yields the
cell barycenters.
*/
func (um *UMesh) Incidence() (A *sparse.CSR, err error) {
	if err = um.CheckConsistency(); err != nil {
		return
	}
	dok := utils.NewDOK(um.NumberOfCells(), um.NumberOfNodes(), um.name+" incidence")
	for k, verts := range um.Connectivity {
		w := 1. / float64(len(verts))
		for _, v := range verts {
			if err = dok.Set(k, v, w); err != nil {
				return
			}
		}
	}
	return dok.ToCSR(), nil
}

func (um *UMesh) Barycenters() (bary *arrays.LabeledArray, err error) {
	var (
		A *sparse.CSR
	)
	nCells, dim := um.NumberOfCells(), um.SpaceDimension()
	if nCells == 0 {
		if err = um.CheckConsistency(); err != nil {
			return
		}
		return arrays.New(0, dim)
	}
	if A, err = um.Incidence(); err != nil {
		return
	}
	X, err := um.Coords.Dense()
	if err != nil {
		return
	}
	R, err := utils.SparseMulDense(A, X)
	if err != nil {
		return
	}
	if bary, err = arrays.FromFlat(R.RawMatrix().Data, dim); err != nil {
		return
	}
	bary.SetName(um.name + " barycenters")
	if err = bary.SetComponentLabels(um.Coords.ComponentLabels()); err != nil {
		return
	}
	return
}
