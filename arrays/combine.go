package arrays

import (
	"gonum.org/v1/gonum/mat"
)

// Aggregate stacks the tuples of b below those of a
func Aggregate(a, b *LabeledArray) (R *LabeledArray, err error) {
	if a.numComponents != b.numComponents {
		return nil, opErrorf("Aggregate", ErrDimension,
			"components differ: %d vs %d", a.numComponents, b.numComponents)
	}
	R = &LabeledArray{
		numRows:       a.numRows + b.numRows,
		numComponents: a.numComponents,
		name:          a.name,
	}
	switch {
	case a.numRows == 0 || b.numRows == 0:
		R.values = append(append([]float64(nil), a.values...), b.values...)
	default:
		var M mat.Dense
		A, _ := a.Dense()
		B, _ := b.Dense()
		M.Stack(A, B)
		R.values = M.RawMatrix().Data
	}
	switch {
	case len(a.labels) != 0:
		R.labels = append([]string(nil), a.labels...)
	case len(b.labels) != 0:
		R.labels = append([]string(nil), b.labels...)
	}
	return
}

// Meld places the components of b to the right of those of a, tuple by tuple
func Meld(a, b *LabeledArray) (R *LabeledArray, err error) {
	if a.numRows != b.numRows {
		return nil, opErrorf("Meld", ErrDimension,
			"tuple counts differ: %d vs %d", a.numRows, b.numRows)
	}
	R = &LabeledArray{
		numRows:       a.numRows,
		numComponents: a.numComponents + b.numComponents,
		name:          a.name,
	}
	if a.numRows == 0 {
		R.values = []float64{}
	} else {
		var M mat.Dense
		A, _ := a.Dense()
		B, _ := b.Dense()
		M.Augment(A, B)
		R.values = M.RawMatrix().Data
	}
	if len(a.labels) != 0 || len(b.labels) != 0 {
		R.labels = append(padLabels(a), padLabels(b)...)
	}
	return
}

func padLabels(la *LabeledArray) []string {
	if len(la.labels) != 0 {
		return append([]string(nil), la.labels...)
	}
	return make([]string, la.numComponents)
}
