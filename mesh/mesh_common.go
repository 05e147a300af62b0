package mesh

import (
	"errors"
	"fmt"

	"github.com/notargets/meshfield/arrays"
)

// ElementType represents different element types
type ElementType int

const (
	Point ElementType = iota
	Line
	Quad
	Hex
)

var (
	elementNames    = [...]string{"Point", "Line", "Quad", "Hex"}
	elementVertices = [...]int{1, 2, 4, 8}
)

func (e ElementType) Valid() bool {
	return e >= Point && e <= Hex
}

func (e ElementType) String() string {
	if !e.Valid() {
		return fmt.Sprintf("ElementType(%d)", int(e))
	}
	return elementNames[e]
}

// NumVertices is 0 for an unknown element type
func (e ElementType) NumVertices() int {
	if !e.Valid() {
		return 0
	}
	return elementVertices[e]
}

// elementForDimension gives the cell type of a Cartesian grid of dimension dim
func elementForDimension(dim int) ElementType {
	return [...]ElementType{Point, Line, Quad, Hex}[dim]
}

var (
	ErrAxisCount    = errors.New("mesh: a Cartesian mesh takes 1, 2 or 3 axes")
	ErrAxisShape    = errors.New("mesh: axis must be a single component array of at least 2 values")
	ErrNoCoords     = errors.New("mesh: coordinates have not been set")
	ErrConnectivity = errors.New("mesh: connectivity references a missing node")
)

// Support is what a field needs from the mesh it lives on
type Support interface {
	Name() string
	MeshDimension() int
	SpaceDimension() int
	NumberOfCells() int
	NumberOfNodes() int
	// Coordinates is the node coordinate array, one tuple per node
	Coordinates() (*arrays.LabeledArray, error)
	// Barycenters holds one tuple per cell
	Barycenters() (*arrays.LabeledArray, error)
}
