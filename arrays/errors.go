package arrays

import "errors"

// Errors returned by LabeledArray operations, wrapped with the failing call as
// context. Match them with errors.Is.
var (
	// ErrInvalidShape: bad dimensions, uneven reshape or a value sequence whose
	// length does not fit the target.
	ErrInvalidShape = errors.New("arrays: invalid shape")

	// ErrRange: a row, column or slice bound outside the array.
	ErrRange = errors.New("arrays: index out of range")

	// ErrLabelMismatch: component label count differs from the component count.
	ErrLabelMismatch = errors.New("arrays: component label count mismatch")

	// ErrDimension: the operation needs a specific component (or row) count.
	ErrDimension = errors.New("arrays: dimension mismatch")

	// ErrInvalidValue: SetSlice was given something that is neither a scalar nor
	// a []float64.
	ErrInvalidValue = errors.New("arrays: unsupported value type")
)
