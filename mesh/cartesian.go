package mesh

import (
	"fmt"

	"github.com/notargets/meshfield/arrays"
)

/*
CMesh is a structured grid given by the Cartesian product of one to three
coordinate axes. Nodes are numbered with x varying fastest, then y, then z.
*/
type CMesh struct {
	name string
	axes []*arrays.LabeledArray
	um   *UMesh // Unstructured form, built on demand
}

func NewCMesh(name string) *CMesh {
	return &CMesh{name: name}
}

func (cm *CMesh) Name() string        { return cm.name }
func (cm *CMesh) SetName(name string) { cm.name = name; cm.um = nil }

// SetCoords replaces the axes with copies of the given 1 component arrays
func (cm *CMesh) SetCoords(axes ...*arrays.LabeledArray) (err error) {
	if len(axes) < 1 || len(axes) > 3 {
		return fmt.Errorf("SetCoords: %d axes: %w", len(axes), ErrAxisCount)
	}
	for n, ax := range axes {
		if ax == nil {
			return fmt.Errorf("SetCoords: axis %d is nil: %w", n, ErrAxisShape)
		}
		nr, nc := ax.Dims()
		if nc != 1 || nr < 2 {
			return fmt.Errorf("SetCoords: axis %d has shape (%d,%d): %w", n, nr, nc, ErrAxisShape)
		}
	}
	cm.axes = make([]*arrays.LabeledArray, len(axes))
	for n, ax := range axes {
		cm.axes[n] = ax.Copy()
	}
	cm.um = nil
	return
}

// Axis returns a copy of coordinate axis n
func (cm *CMesh) Axis(n int) (ax *arrays.LabeledArray, err error) {
	if n < 0 || n >= len(cm.axes) {
		return nil, fmt.Errorf("Axis: %d of %d: %w", n, len(cm.axes), ErrNoCoords)
	}
	return cm.axes[n].Copy(), nil
}

func (cm *CMesh) MeshDimension() int  { return len(cm.axes) }
func (cm *CMesh) SpaceDimension() int { return len(cm.axes) }

func (cm *CMesh) NodeCounts() (counts []int) {
	counts = make([]int, len(cm.axes))
	for n, ax := range cm.axes {
		counts[n], _ = ax.Dims()
	}
	return
}

func (cm *CMesh) CellCounts() (counts []int) {
	counts = cm.NodeCounts()
	for n := range counts {
		counts[n]--
	}
	return
}

func (cm *CMesh) NumberOfNodes() int { return product(cm.NodeCounts()) }
func (cm *CMesh) NumberOfCells() int { return product(cm.CellCounts()) }

func product(counts []int) (p int) {
	if len(counts) == 0 {
		return 0
	}
	p = 1
	for _, c := range counts {
		p *= c
	}
	return
}

// BuildUnstructured produces the explicit node and cell lists of the grid
func (cm *CMesh) BuildUnstructured() (um *UMesh, err error) {
	var (
		dim    = len(cm.axes)
		nn     = cm.NodeCounts()
		nNodes = cm.NumberOfNodes()
		coords *arrays.LabeledArray
	)
	if dim == 0 {
		return nil, fmt.Errorf("BuildUnstructured: %w", ErrNoCoords)
	}
	if coords, err = arrays.New(nNodes, dim); err != nil {
		return
	}
	axisValues := make([][]float64, dim)
	labels := make([]string, dim)
	named := true
	for n, ax := range cm.axes {
		axisValues[n] = ax.Values()
		labels[n] = ax.Name()
		named = named && len(labels[n]) != 0
	}
	if named {
		if err = coords.SetComponentLabels(labels); err != nil {
			return
		}
	}
	coords.SetName(cm.name + " coordinates")
	for node := 0; node < nNodes; node++ {
		ijk := unflatten(node, nn)
		for n := 0; n < dim; n++ {
			if err = coords.Set(node, n, axisValues[n][ijk[n]]); err != nil {
				return
			}
		}
	}
	um = &UMesh{
		name:          cm.name,
		meshDimension: dim,
		Coords:        coords,
	}
	et := elementForDimension(dim)
	nc := cm.CellCounts()
	nCells := product(nc)
	um.Connectivity = make([][]int, nCells)
	um.CellTypes = make([]ElementType, nCells)
	for cell := 0; cell < nCells; cell++ {
		um.Connectivity[cell] = cellVertices(unflatten(cell, nc), nn)
		um.CellTypes[cell] = et
	}
	return
}

// unflatten splits a flat index into per axis indices, first axis fastest
func unflatten(ind int, counts []int) (ijk []int) {
	ijk = make([]int, len(counts))
	for n, c := range counts {
		ijk[n] = ind % c
		ind /= c
	}
	return
}

func flatten(ijk []int, counts []int) (ind int) {
	for n := len(counts) - 1; n >= 0; n-- {
		ind = ind*counts[n] + ijk[n]
	}
	return
}

// cellVertices lists the nodes of the cell whose lowest corner is ijk: lines
// left to right, quads counter-clockwise, hexes bottom face then top face
func cellVertices(ijk []int, nn []int) (verts []int) {
	var (
		node = func(offsets ...int) int {
			p := make([]int, len(ijk))
			for n := range ijk {
				p[n] = ijk[n] + offsets[n]
			}
			return flatten(p, nn)
		}
	)
	switch len(ijk) {
	case 1:
		return []int{node(0), node(1)}
	case 2:
		return []int{node(0, 0), node(1, 0), node(1, 1), node(0, 1)}
	default:
		return []int{
			node(0, 0, 0), node(1, 0, 0), node(1, 1, 0), node(0, 1, 0),
			node(0, 0, 1), node(1, 0, 1), node(1, 1, 1), node(0, 1, 1),
		}
	}
}

func (cm *CMesh) unstructured() (um *UMesh, err error) {
	if cm.um == nil {
		if cm.um, err = cm.BuildUnstructured(); err != nil {
			return
		}
	}
	return cm.um, nil
}

func (cm *CMesh) Coordinates() (coords *arrays.LabeledArray, err error) {
	var um *UMesh
	if um, err = cm.unstructured(); err != nil {
		return
	}
	return um.Coordinates()
}

func (cm *CMesh) Barycenters() (bary *arrays.LabeledArray, err error) {
	var um *UMesh
	if um, err = cm.unstructured(); err != nil {
		return
	}
	return um.Barycenters()
}
