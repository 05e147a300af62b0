package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadRange = errors.New("utils: bad range")

type R1 struct {
	Max int
}

func NewR1(imax int) R1 {
	return R1{imax}
}

type R2 struct {
	Ir, Jr R1
}

func NewR2(imax, jmax int) R2 {
	return R2{
		NewR1(imax),
		NewR1(jmax),
	}
}

// Range returns the flat row-major offsets of the sub-rectangle selected by
// dimI (rows) and dimJ (columns), failing on anything outside the bounds
func (r R2) Range(dimI, dimJ interface{}) (I Index, err error) {
	var (
		i1, i2, j1, j2 int
	)
	if i1, i2, err = ParseDimChecked(dimI, r.Ir.Max); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if j1, j2, err = ParseDimChecked(dimJ, r.Jr.Max); err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	return r.rangeOf(i1, i2, j1, j2), nil
}

func (r R2) rangeOf(i1, i2, j1, j2 int) (I Index) {
	var (
		nj = r.Jr.Max
	)
	size := (i2 - i1) * (j2 - j1)
	if size < 0 {
		size = 0
	}
	I = NewIndex(size)
	var ind int
	for i := i1; i < i2; i++ {
		for j := j1; j < j2; j++ {
			I[ind] = j + nj*i // Row Major
			ind++
		}
	}
	return
}

func ParseDim(dimI interface{}, max int) (i1, i2 int) {
	/*
		Converts phrases including:
			nil   = full range, from 0 to max (loop indexing)
			":"   = full range, from 0 to max (loop indexing)
			"end" = last index, from max-1, max
			"N"   = middle index, from N-1, N
		   	N     = middle index, from N-1, N
		    "2:N" = range, from 2 to N (loop indexing)
		   	":N"  = range, from 0 to N (loop indexing)
		   	"N:"  = range, from N to max-1 (loop indexing)
	*/
	switch dim := dimI.(type) {
	case nil:
		i1, i2 = 0, max
	case string:
		switch dim {
		case "end":
			i1, i2 = max-1, max
		case ":", "":
			i1, i2 = 0, max
		default:
			i1, i2 = parseRange(dim, max)
		}
	case int:
		i1, i2 = dim, dim+1
	}
	return
}

// ParseDimChecked parses like ParseDim but rejects anything that does not
// select a non-empty range within [0, max)
func ParseDimChecked(dimI interface{}, max int) (i1, i2 int, err error) {
	switch dim := dimI.(type) {
	case nil, int:
	case string:
		switch dim {
		case "end", ":", "":
		default:
			if err = checkRangeSyntax(dim); err != nil {
				return
			}
		}
	default:
		err = fmt.Errorf("unsupported range type %T: %w", dimI, ErrBadRange)
		return
	}
	i1, i2 = ParseDim(dimI, max)
	if i1 < 0 || i2 > max || i1 >= i2 {
		err = fmt.Errorf("range [%d,%d) outside [0,%d): %w", i1, i2, max, ErrBadRange)
	}
	return
}

func checkRangeSyntax(dim string) error {
	splits := strings.Split(dim, ":")
	if len(splits) > 2 {
		return fmt.Errorf("too many ':' in %q: %w", dim, ErrBadRange)
	}
	for _, s := range splits {
		if len(s) == 0 {
			continue
		}
		if _, err := strconv.Atoi(s); err != nil {
			return fmt.Errorf("non integer bound in %q: %w", dim, ErrBadRange)
		}
	}
	return nil
}

func parseRange(dim string, max int) (i1, i2 int) {
	var (
		splits = strings.Split(dim, ":")
		err    error
	)
	if i1, err = strconv.Atoi(splits[0]); err != nil {
		i1 = 0
	}
	if len(splits) == 1 {
		i2 = i1 + 1
		return
	}
	if i2, err = strconv.Atoi(splits[1]); err != nil {
		i2 = max
	}
	return
}
