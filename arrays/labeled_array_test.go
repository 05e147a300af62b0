package arrays

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabeledArrayAllocation(t *testing.T) {
	// Allocate then read back zeros
	{
		for _, shape := range [][2]int{{1, 1}, {4, 2}, {3, 7}, {10, 3}} {
			la, err := New(shape[0], shape[1])
			require.NoError(t, err)
			nr, nc := la.Dims()
			assert.Equal(t, shape[0], nr)
			assert.Equal(t, shape[1], nc)
			assert.Equal(t, make([]float64, shape[0]*shape[1]), la.Values())
		}
	}
	// Zero tuples is a valid shape
	{
		la, err := New(0, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, la.Len())
		_, err = la.Dense()
		assert.ErrorIs(t, err, ErrInvalidShape)
		_, err = la.Min()
		assert.ErrorIs(t, err, ErrInvalidShape)
	}
	// Bad shapes
	{
		_, err := New(-1, 2)
		assert.ErrorIs(t, err, ErrInvalidShape)
		_, err = New(2, 0)
		assert.ErrorIs(t, err, ErrInvalidShape)
		_, err = New(1<<32, 1<<32)
		assert.ErrorIs(t, err, ErrInvalidShape)
		_, err = New(math.MaxInt, 2)
		assert.ErrorIs(t, err, ErrInvalidShape)
	}
	// Alloc on an existing array resets contents and drops stale labels
	{
		la, err := New(2, 2)
		require.NoError(t, err)
		require.NoError(t, la.SetSlice(nil, nil, 3.))
		require.NoError(t, la.SetComponentLabels([]string{"x", "y"}))
		require.NoError(t, la.Alloc(4, 2))
		assert.Equal(t, make([]float64, 8), la.Values())
		assert.Equal(t, []string{"x", "y"}, la.ComponentLabels())
		require.NoError(t, la.Alloc(4, 3))
		assert.Empty(t, la.ComponentLabels())
		assert.ErrorIs(t, la.Alloc(-4, 3), ErrInvalidShape)
		nr, nc := la.Dims()
		assert.Equal(t, 4, nr)
		assert.Equal(t, 3, nc)
	}
}

func TestLabeledArrayRearrange(t *testing.T) {
	for L := 0; L <= 12; L++ {
		for k := 1; k <= 5; k++ {
			la, err := FromFlat(make([]float64, L), 1)
			require.NoError(t, err)
			err = la.Rearrange(k)
			if L%k != 0 {
				assert.ErrorIs(t, err, ErrInvalidShape)
				nr, nc := la.Dims()
				assert.Equal(t, L, nr)
				assert.Equal(t, 1, nc)
				continue
			}
			require.NoError(t, err)
			nr, nc := la.Dims()
			assert.Equal(t, L/k, nr)
			assert.Equal(t, k, nc)
			assert.Equal(t, L, la.Len())
		}
	}
	{
		la, err := FromFlat([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 2)
		require.NoError(t, err)
		nr, _ := la.Dims()
		assert.Equal(t, 4, nr)
		val, err := la.At(3, 1)
		require.NoError(t, err)
		assert.Equal(t, 8., val)
		assert.ErrorIs(t, la.Rearrange(0), ErrInvalidShape)
		_, err = FromFlat([]float64{1, 2, 3}, 2)
		assert.ErrorIs(t, err, ErrInvalidShape)
	}
	// FromFlat copies its input
	{
		in := []float64{1, 2}
		la, err := FromFlat(in, 1)
		require.NoError(t, err)
		in[0] = 10
		assert.Equal(t, []float64{1, 2}, la.Values())
	}
}

func TestLabeledArraySetSlice(t *testing.T) {
	la, err := New(4, 2)
	require.NoError(t, err)
	// Everything
	{
		require.NoError(t, la.SetSlice(":", ":", 1.))
		assert.True(t, la.IsUniform(1., 1.e-13))
	}
	// Rows 1 through 3
	{
		require.NoError(t, la.SetSlice("1:4", nil, 2.))
		assert.Equal(t, []float64{1, 1, 2, 2, 2, 2, 2, 2}, la.Values())
	}
	// One column from a sequence
	{
		require.NoError(t, la.SetSlice(nil, 1, []float64{1, 2, 3, 4}))
		assert.Equal(t, []float64{1, 1, 2, 2, 2, 3, 2, 4}, la.Values())
		col, err := la.Column(1)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, 4}, col)
	}
	// Sub-rectangle filled row-major
	{
		require.NoError(t, la.SetSlice("2:4", "0:2", []float64{5, 6, 7, 8}))
		row, err := la.Row(3)
		require.NoError(t, err)
		assert.Equal(t, []float64{7, 8}, row)
		require.NoError(t, la.SetSlice("end", "end", 9))
		val, _ := la.At(3, 1)
		assert.Equal(t, 9., val)
	}
	// Failures leave the array unchanged
	{
		before := la.Values()
		assert.ErrorIs(t, la.SetSlice(4, nil, 1.), ErrRange)
		assert.ErrorIs(t, la.SetSlice(nil, 2, 1.), ErrRange)
		assert.ErrorIs(t, la.SetSlice("3:1", nil, 1.), ErrRange)
		assert.ErrorIs(t, la.SetSlice(-1, nil, 1.), ErrRange)
		assert.ErrorIs(t, la.SetSlice(nil, 1, []float64{1, 2}), ErrInvalidShape)
		assert.ErrorIs(t, la.SetSlice(nil, nil, "one"), ErrInvalidValue)
		assert.Equal(t, before, la.Values())
	}
	// Element access bounds
	{
		_, err = la.At(4, 0)
		assert.ErrorIs(t, err, ErrRange)
		assert.ErrorIs(t, la.Set(0, 2, 1.), ErrRange)
		_, err = la.Row(-1)
		assert.ErrorIs(t, err, ErrRange)
		_, err = la.Column(2)
		assert.ErrorIs(t, err, ErrRange)
	}
}

func TestLabeledArrayLabels(t *testing.T) {
	la, err := New(4, 2)
	require.NoError(t, err)
	la.SetName("array of doubles")
	assert.Equal(t, "array of doubles", la.Name())
	require.NoError(t, la.SetComponentLabels([]string{"x", "y"}))
	assert.Equal(t, []string{"x", "y"}, la.ComponentLabels())

	err = la.SetComponentLabels([]string{"x", "y", "z"})
	assert.ErrorIs(t, err, ErrLabelMismatch)
	assert.Equal(t, []string{"x", "y"}, la.ComponentLabels())

	require.NoError(t, la.SetComponentLabels(nil))
	assert.Empty(t, la.ComponentLabels())

	require.NoError(t, la.SetComponentLabels([]string{"x", "y"}))
	require.NoError(t, la.Rearrange(1))
	assert.Empty(t, la.ComponentLabels())

	s := la.String()
	assert.Contains(t, s, "array of doubles")
	assert.Contains(t, s, "8 tuples x 1 components")
}

func TestLabeledArrayPolar(t *testing.T) {
	var (
		tol = 1.e-12
	)
	la, err := FromFlat([]float64{
		1, 0,
		0, 2,
		-3, 4,
		-1, -1,
		2.5, -7,
	}, 2)
	require.NoError(t, err)
	la.SetName("points")

	polar, err := la.ToPolar()
	require.NoError(t, err)
	assert.Equal(t, "points", polar.Name())
	r, _ := polar.At(2, 0)
	assert.InDelta(t, 5., r, tol)
	theta, _ := polar.At(1, 1)
	assert.InDelta(t, math.Pi/2, theta, tol)
	// Receiver untouched
	assert.Equal(t, []float64{1, 0, 0, 2, -3, 4, -1, -1, 2.5, -7}, la.Values())

	back, err := polar.ToCartesian()
	require.NoError(t, err)
	assert.InDeltaSlice(t, la.Values(), back.Values(), tol)

	three, err := New(2, 3)
	require.NoError(t, err)
	_, err = three.ToPolar()
	assert.ErrorIs(t, err, ErrDimension)
	_, err = three.ToCartesian()
	assert.ErrorIs(t, err, ErrDimension)
}

func TestLabeledArrayMagnitude(t *testing.T) {
	la, err := FromFlat([]float64{3, 4, 0, 0, 1, 1}, 2)
	require.NoError(t, err)
	mag := la.Magnitude()
	nr, nc := mag.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 1, nc)
	assert.InDeltaSlice(t, []float64{5, 0, math.Sqrt2}, mag.Values(), 1.e-14)

	min, err := mag.Min()
	require.NoError(t, err)
	assert.Equal(t, 0., min)
	max, err := mag.Max()
	require.NoError(t, err)
	assert.Equal(t, 5., max)
	assert.False(t, mag.IsUniform(5, 1.e-13))
}

func TestLabeledArrayCombine(t *testing.T) {
	a, err := FromFlat([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	a.SetName("a")
	require.NoError(t, a.SetComponentLabels([]string{"x", "y"}))
	b, err := FromFlat([]float64{5, 6, 7, 8}, 2)
	require.NoError(t, err)

	// Aggregate stacks tuples
	{
		R, err := Aggregate(a, b)
		require.NoError(t, err)
		nr, nc := R.Dims()
		assert.Equal(t, 4, nr)
		assert.Equal(t, 2, nc)
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, R.Values())
		assert.Equal(t, "a", R.Name())
		assert.Equal(t, []string{"x", "y"}, R.ComponentLabels())
	}
	// Meld stacks components
	{
		R, err := Meld(a, b)
		require.NoError(t, err)
		nr, nc := R.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 4, nc)
		assert.Equal(t, []float64{1, 2, 5, 6, 3, 4, 7, 8}, R.Values())
		assert.Equal(t, []string{"x", "y", "", ""}, R.ComponentLabels())
	}
	// Inputs are not modified
	{
		assert.Equal(t, []float64{1, 2, 3, 4}, a.Values())
		assert.Equal(t, []float64{5, 6, 7, 8}, b.Values())
	}
	// Shape mismatches
	{
		c, err := New(2, 3)
		require.NoError(t, err)
		_, err = Aggregate(a, c)
		assert.ErrorIs(t, err, ErrDimension)
		R, err := Meld(a, c)
		require.NoError(t, err)
		_, nc := R.Dims()
		assert.Equal(t, 5, nc)

		d, err := New(3, 2)
		require.NoError(t, err)
		_, err = Meld(a, d)
		assert.ErrorIs(t, err, ErrDimension)
		R, err = Aggregate(a, d)
		require.NoError(t, err)
		nr, _ := R.Dims()
		assert.Equal(t, 5, nr)
	}
	// Empty operands
	{
		e, err := New(0, 2)
		require.NoError(t, err)
		R, err := Aggregate(e, b)
		require.NoError(t, err)
		assert.Equal(t, b.Values(), R.Values())
		R, err = Meld(e, e)
		require.NoError(t, err)
		nr, nc := R.Dims()
		assert.Equal(t, 0, nr)
		assert.Equal(t, 4, nc)
	}
}

func TestLabeledArrayCopy(t *testing.T) {
	a, err := FromFlat([]float64{1, 2}, 2)
	require.NoError(t, err)
	require.NoError(t, a.SetComponentLabels([]string{"u", "v"}))
	c := a.Copy()
	require.NoError(t, c.Set(0, 0, 10))
	require.NoError(t, c.SetComponentLabels([]string{"p", "q"}))
	assert.Equal(t, []float64{1, 2}, a.Values())
	assert.Equal(t, []string{"u", "v"}, a.ComponentLabels())

	M, err := a.Dense()
	require.NoError(t, err)
	M.Set(0, 1, 20)
	val, _ := a.At(0, 1)
	assert.Equal(t, 20., val)
}
