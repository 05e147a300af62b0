package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int, name ...string) (R DOK) {
	R = DOK{
		M:    sparse.NewDOK(nr, nc),
		name: "unnamed",
	}
	if len(name) != 0 {
		R.name = name[0]
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) Name() string        { return m.name }

func (m DOK) Set(i, j int, val float64) (err error) { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	if i < 0 || i >= nr || j < 0 || j >= nc {
		err = fmt.Errorf("index out of bounds in %q: (%d,%d), dims = (%d,%d): %w",
			m.name, i, j, nr, nc, ErrBadRange)
		return
	}
	m.M.Set(i, j, val)
	return
}

func (m DOK) ToCSR() *sparse.CSR {
	return m.M.ToCSR()
}

// SparseMulDense returns A*B for a sparse A and a dense B
func SparseMulDense(A *sparse.CSR, B mat.Matrix) (R *mat.Dense, err error) {
	var (
		nrA, ncA = A.Dims()
		nrB, ncB = B.Dims()
	)
	if ncA != nrB {
		err = fmt.Errorf("dimension mismatch in product: (%d,%d) x (%d,%d): %w",
			nrA, ncA, nrB, ncB, ErrBadRange)
		return
	}
	R = mat.NewDense(nrA, ncB, nil)
	R.Mul(A, B)
	return
}
