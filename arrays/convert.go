package arrays

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func (la *LabeledArray) pairwise(op string, f func(a, b float64) (float64, float64)) (R *LabeledArray, err error) {
	if la.numComponents != 2 {
		return nil, opErrorf(op, ErrDimension, "needs 2 components, have %d", la.numComponents)
	}
	R = &LabeledArray{
		values:        make([]float64, len(la.values)),
		numRows:       la.numRows,
		numComponents: 2,
		name:          la.name,
	}
	for i := 0; i < la.numRows; i++ {
		R.values[2*i], R.values[2*i+1] = f(la.values[2*i], la.values[2*i+1])
	}
	return
}

// ToPolar maps (x,y) tuples to (r,theta), theta in (-pi,pi]
func (la *LabeledArray) ToPolar() (*LabeledArray, error) {
	return la.pairwise("ToPolar", func(x, y float64) (float64, float64) {
		return math.Hypot(x, y), math.Atan2(y, x)
	})
}

// ToCartesian maps (r,theta) tuples to (x,y)
func (la *LabeledArray) ToCartesian() (*LabeledArray, error) {
	return la.pairwise("ToCartesian", func(r, theta float64) (float64, float64) {
		sin, cos := math.Sincos(theta)
		return r * cos, r * sin
	})
}

// Magnitude returns the Euclidean norm of each tuple as a 1 component array
func (la *LabeledArray) Magnitude() (R *LabeledArray) {
	var (
		nc = la.numComponents
	)
	R = &LabeledArray{
		values:        make([]float64, la.numRows),
		numRows:       la.numRows,
		numComponents: 1,
		name:          la.name,
	}
	for i := range R.values {
		R.values[i] = floats.Norm(la.values[i*nc:(i+1)*nc], 2)
	}
	return
}
