package arrays

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/meshfield/utils"
)

/*
LabeledArray is a dense row-major table of float64 values, numRows tuples of
numComponents values each, with an optional name and one optional label per
component.

	len(values) == numRows*numComponents holds after every call; a call that
	returns an error leaves the array as it was.
*/
type LabeledArray struct {
	values        []float64
	numRows       int
	numComponents int
	name          string
	labels        []string
}

func opErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("LabeledArray.%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}

// New allocates a zero filled array of numRows tuples by numComponents
func New(numRows, numComponents int) (la *LabeledArray, err error) {
	la = &LabeledArray{numComponents: 1}
	if err = la.Alloc(numRows, numComponents); err != nil {
		return nil, err
	}
	return
}

// FromFlat copies values and shapes them into tuples of numComponents
func FromFlat(values []float64, numComponents int) (la *LabeledArray, err error) {
	la = &LabeledArray{
		values:        append([]float64(nil), values...),
		numRows:       len(values),
		numComponents: 1,
	}
	if err = la.Rearrange(numComponents); err != nil {
		return nil, err
	}
	return
}

// Alloc resets the buffer to zeros with the new shape. Labels survive only if
// the component count is unchanged.
func (la *LabeledArray) Alloc(numRows, numComponents int) (err error) {
	if numRows < 0 || numComponents < 1 {
		return opErrorf("Alloc", ErrInvalidShape, "numRows = %d, numComponents = %d", numRows, numComponents)
	}
	if numRows > math.MaxInt/numComponents {
		return opErrorf("Alloc", ErrInvalidShape, "%d x %d overflows", numRows, numComponents)
	}
	if numComponents != la.numComponents {
		la.labels = nil
	}
	la.values = make([]float64, numRows*numComponents)
	la.numRows, la.numComponents = numRows, numComponents
	return
}

// Rearrange reinterprets the flat buffer as tuples of numComponents. Labels are
// cleared.
func (la *LabeledArray) Rearrange(numComponents int) (err error) {
	var (
		L = len(la.values)
	)
	if numComponents < 1 {
		return opErrorf("Rearrange", ErrInvalidShape, "numComponents = %d", numComponents)
	}
	if L%numComponents != 0 {
		return opErrorf("Rearrange", ErrInvalidShape, "length %d not divisible by %d", L, numComponents)
	}
	la.numRows = L / numComponents
	la.numComponents = numComponents
	la.labels = nil
	return
}

func (la *LabeledArray) Copy() (R *LabeledArray) {
	R = &LabeledArray{
		values:        append([]float64(nil), la.values...),
		numRows:       la.numRows,
		numComponents: la.numComponents,
		name:          la.name,
	}
	if len(la.labels) != 0 {
		R.labels = append([]string(nil), la.labels...)
	}
	return
}

func (la *LabeledArray) Dims() (numRows, numComponents int) { return la.numRows, la.numComponents }
func (la *LabeledArray) Len() int                           { return len(la.values) }
func (la *LabeledArray) Name() string                       { return la.name }
func (la *LabeledArray) SetName(name string)                { la.name = name }

// Values returns a copy of the row-major buffer
func (la *LabeledArray) Values() []float64 {
	return append([]float64(nil), la.values...)
}

func (la *LabeledArray) ComponentLabels() []string {
	return append([]string(nil), la.labels...)
}

// SetComponentLabels accepts exactly one label per component, or none to clear
func (la *LabeledArray) SetComponentLabels(labels []string) (err error) {
	if len(labels) != 0 && len(labels) != la.numComponents {
		return opErrorf("SetComponentLabels", ErrLabelMismatch,
			"%d labels for %d components", len(labels), la.numComponents)
	}
	if len(labels) == 0 {
		la.labels = nil
		return
	}
	la.labels = append([]string(nil), labels...)
	return
}

func (la *LabeledArray) checkIndex(op string, i, j int) error {
	if i < 0 || i >= la.numRows || j < 0 || j >= la.numComponents {
		return opErrorf(op, ErrRange, "(%d,%d) outside (%d,%d)", i, j, la.numRows, la.numComponents)
	}
	return nil
}

func (la *LabeledArray) At(i, j int) (val float64, err error) {
	if err = la.checkIndex("At", i, j); err != nil {
		return
	}
	return la.values[i*la.numComponents+j], nil
}

func (la *LabeledArray) Set(i, j int, val float64) (err error) { // Changes receiver
	if err = la.checkIndex("Set", i, j); err != nil {
		return
	}
	la.values[i*la.numComponents+j] = val
	return
}

// Row returns a copy of tuple i
func (la *LabeledArray) Row(i int) (row []float64, err error) {
	if err = la.checkIndex("Row", i, 0); err != nil {
		return
	}
	nc := la.numComponents
	return append([]float64(nil), la.values[i*nc:(i+1)*nc]...), nil
}

// Column returns a copy of component j
func (la *LabeledArray) Column(j int) (col []float64, err error) {
	if j < 0 || j >= la.numComponents {
		return nil, opErrorf("Column", ErrRange, "component %d of %d", j, la.numComponents)
	}
	col = make([]float64, la.numRows)
	for i := range col {
		col[i] = la.values[i*la.numComponents+j]
	}
	return
}

// Dense returns a gonum matrix sharing the array's buffer
func (la *LabeledArray) Dense() (M *mat.Dense, err error) {
	if la.numRows == 0 {
		return nil, opErrorf("Dense", ErrInvalidShape, "empty array has no matrix form")
	}
	return mat.NewDense(la.numRows, la.numComponents, la.values), nil
}

/*
SetSlice assigns into the sub-rectangle selected by rowRange and colRange.
Ranges follow utils.ParseDim: nil or ":" for everything, an int for a single
index, "a:b" for a half open range, "end" for the last index.

value is either a float64 broadcast to every selected entry, or a []float64
holding exactly one value per selected entry in row-major order.
*/
func (la *LabeledArray) SetSlice(rowRange, colRange interface{}, value interface{}) (err error) { // Changes receiver
	var (
		I utils.Index
	)
	if I, err = utils.NewR2(la.numRows, la.numComponents).Range(rowRange, colRange); err != nil {
		return opErrorf("SetSlice", ErrRange, "%v", err)
	}
	switch val := value.(type) {
	case float64:
		for _, ind := range I {
			la.values[ind] = val
		}
	case int:
		for _, ind := range I {
			la.values[ind] = float64(val)
		}
	case []float64:
		if len(val) != len(I) {
			return opErrorf("SetSlice", ErrInvalidShape, "%d values for %d entries", len(val), len(I))
		}
		for ii, ind := range I {
			la.values[ind] = val[ii]
		}
	default:
		return opErrorf("SetSlice", ErrInvalidValue, "%T", value)
	}
	return
}

// IsUniform reports whether every entry lies within eps of val
func (la *LabeledArray) IsUniform(val, eps float64) bool {
	for _, v := range la.values {
		if !scalar.EqualWithinAbs(v, val, eps) {
			return false
		}
	}
	return true
}

func (la *LabeledArray) Min() (min float64, err error) {
	if len(la.values) == 0 {
		return 0, opErrorf("Min", ErrInvalidShape, "empty array")
	}
	return floats.Min(la.values), nil
}

func (la *LabeledArray) Max() (max float64, err error) {
	if len(la.values) == 0 {
		return 0, opErrorf("Max", ErrInvalidShape, "empty array")
	}
	return floats.Max(la.values), nil
}

func (la *LabeledArray) String() string {
	var (
		sb     strings.Builder
		nc     = la.numComponents
		labels = la.labels
	)
	name := la.name
	if len(name) == 0 {
		name = "(unnamed)"
	}
	fmt.Fprintf(&sb, "LabeledArray %s: %d tuples x %d components\n", name, la.numRows, nc)
	if len(labels) != 0 {
		fmt.Fprintf(&sb, "Components: %s\n", strings.Join(labels, ", "))
	}
	for i := 0; i < la.numRows; i++ {
		fmt.Fprintf(&sb, "Tuple #%d : %v\n", i, la.values[i*nc:(i+1)*nc])
	}
	return sb.String()
}
