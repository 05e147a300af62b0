package field

import (
	"fmt"

	"github.com/notargets/meshfield/arrays"
	"github.com/notargets/meshfield/mesh"
)

// FieldDouble holds one float64 tuple per cell or per node of a mesh
type FieldDouble struct {
	on     TypeOfField
	td     TimeDiscretization
	mesh   mesh.Support
	name   string
	nature Nature
	values *arrays.LabeledArray
	// Time stamp, meaningful for OneTime only
	time            float64
	iteration, ordr int
}

func NewFieldDouble(on TypeOfField, td TimeDiscretization) *FieldDouble {
	return &FieldDouble{
		on: on,
		td: td,
	}
}

func (f *FieldDouble) TypeOfField() TypeOfField                { return f.on }
func (f *FieldDouble) TimeDiscretization() TimeDiscretization  { return f.td }
func (f *FieldDouble) Mesh() mesh.Support                      { return f.mesh }
func (f *FieldDouble) Name() string                            { return f.name }
func (f *FieldDouble) SetName(name string)                     { f.name = name }
func (f *FieldDouble) Nature() Nature                          { return f.nature }
func (f *FieldDouble) Time() (t float64, iteration, order int) { return f.time, f.iteration, f.ordr }
func (f *FieldDouble) SetMesh(m mesh.Support)                  { f.mesh = m }

func (f *FieldDouble) SetNature(n Nature) (err error) {
	if !n.valid() {
		return fmt.Errorf("SetNature: %v: %w", n, ErrUnknownNature)
	}
	f.nature = n
	return
}

func (f *FieldDouble) SetTime(t float64, iteration, order int) (err error) {
	if f.td == NoTime {
		return fmt.Errorf("SetTime on %q: %w", f.name, ErrNoTime)
	}
	f.time, f.iteration, f.ordr = t, iteration, order
	return
}

// Array returns the field's values, nil before they are set
func (f *FieldDouble) Array() *arrays.LabeledArray { return f.values }

func (f *FieldDouble) SetArray(values *arrays.LabeledArray) (err error) {
	var (
		expected int
	)
	if values == nil {
		return fmt.Errorf("SetArray: nil array: %w", ErrInconsistent)
	}
	if expected, err = f.supportCount(); err != nil {
		return
	}
	if nr, _ := values.Dims(); nr != expected {
		return fmt.Errorf("SetArray: %d tuples, support %s has %d: %w", nr, f.on, expected, ErrInconsistent)
	}
	f.values = values
	return
}

func (f *FieldDouble) supportCount() (n int, err error) {
	if f.mesh == nil {
		return 0, fmt.Errorf("field %q: %w", f.name, ErrNoMesh)
	}
	switch f.on {
	case OnCells:
		return f.mesh.NumberOfCells(), nil
	case OnNodes:
		return f.mesh.NumberOfNodes(), nil
	}
	return 0, fmt.Errorf("field %q: %v: %w", f.name, f.on, ErrUnknownType)
}

// CheckConsistency verifies that the values match the mesh support
func (f *FieldDouble) CheckConsistency() (err error) {
	var (
		expected int
	)
	if expected, err = f.supportCount(); err != nil {
		return
	}
	if f.values == nil {
		return fmt.Errorf("field %q has no values: %w", f.name, ErrInconsistent)
	}
	if nr, _ := f.values.Dims(); nr != expected {
		return fmt.Errorf("field %q: %d tuples, support has %d: %w", f.name, nr, expected, ErrInconsistent)
	}
	return
}

// points returns the locations at which the field is sampled
func (f *FieldDouble) points() (pts *arrays.LabeledArray, err error) {
	if f.mesh == nil {
		return nil, fmt.Errorf("field %q: %w", f.name, ErrNoMesh)
	}
	switch f.on {
	case OnCells:
		return f.mesh.Barycenters()
	case OnNodes:
		return f.mesh.Coordinates()
	}
	return nil, fmt.Errorf("field %q: %v: %w", f.name, f.on, ErrUnknownType)
}

// FillFromAnalytic evaluates fn at every support point and stores the result
// as numComponents values per point
func (f *FieldDouble) FillFromAnalytic(numComponents int, fn AnalyticFunc) (err error) {
	var (
		pts    *arrays.LabeledArray
		values *arrays.LabeledArray
	)
	if numComponents < 1 {
		return fmt.Errorf("FillFromAnalytic: %d: %w", numComponents, ErrInvalidComponents)
	}
	if fn == nil {
		return fmt.Errorf("FillFromAnalytic: nil function: %w", ErrUnknownFunction)
	}
	if pts, err = f.points(); err != nil {
		return
	}
	nPts, _ := pts.Dims()
	if values, err = arrays.New(nPts, numComponents); err != nil {
		return
	}
	out := make([]float64, numComponents)
	for i := 0; i < nPts; i++ {
		pos, _ := pts.Row(i)
		for n := range out {
			out[n] = 0
		}
		if err = fn(pos, out); err != nil {
			return fmt.Errorf("FillFromAnalytic: point %d: %w", i, err)
		}
		if err = values.SetSlice(i, nil, out); err != nil {
			return
		}
	}
	values.SetName(f.name)
	f.values = values
	return
}
