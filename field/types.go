package field

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMesh            = errors.New("field: no mesh attached")
	ErrNoTime            = errors.New("field: field has no time discretization")
	ErrUnknownNature     = errors.New("field: unknown nature")
	ErrUnknownType       = errors.New("field: unknown support type")
	ErrUnknownTime       = errors.New("field: unknown time discretization")
	ErrUnknownFunction   = errors.New("field: unknown analytic function or invalid expression")
	ErrInconsistent      = errors.New("field: values do not match the support")
	ErrInvalidComponents = errors.New("field: number of components must be >= 1")
)

// TypeOfField is where a field's values live on the mesh
type TypeOfField uint8

const (
	OnCells TypeOfField = iota
	OnNodes
)

var typeOfFieldNames = map[TypeOfField]string{
	OnCells: "ON_CELLS",
	OnNodes: "ON_NODES",
}

func (tf TypeOfField) String() string {
	if name, ok := typeOfFieldNames[tf]; ok {
		return name
	}
	return fmt.Sprintf("TypeOfField(%d)", tf)
}

func ParseTypeOfField(label string) (tf TypeOfField, err error) {
	for tf, name := range typeOfFieldNames {
		if matchLabel(label, name) {
			return tf, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", label, ErrUnknownType)
}

// TimeDiscretization says whether a field carries a time stamp
type TimeDiscretization uint8

const (
	NoTime TimeDiscretization = iota
	OneTime
)

var timeNames = map[TimeDiscretization]string{
	NoTime:  "NO_TIME",
	OneTime: "ONE_TIME",
}

func (td TimeDiscretization) String() string {
	if name, ok := timeNames[td]; ok {
		return name
	}
	return fmt.Sprintf("TimeDiscretization(%d)", td)
}

func ParseTimeDiscretization(label string) (td TimeDiscretization, err error) {
	for td, name := range timeNames {
		if matchLabel(label, name) {
			return td, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", label, ErrUnknownTime)
}

/*
Nature describes how a field's values are meant to behave when moved to a
different mesh:

	NoNature              - unspecified
	ExtensiveConservation - integral quantity, total is conserved
	ExtensiveMaximum      - integral quantity, maximum is preserved
	IntensiveConservation - pointwise quantity, integral is conserved
	IntensiveMaximum      - pointwise quantity, maximum is preserved

The tag is carried with the field; nothing here interprets it.
*/
type Nature uint8

const (
	NoNature Nature = iota
	ExtensiveConservation
	ExtensiveMaximum
	IntensiveConservation
	IntensiveMaximum
)

var natureNames = []string{
	"NoNature",
	"ExtensiveConservation",
	"ExtensiveMaximum",
	"IntensiveConservation",
	"IntensiveMaximum",
}

func (n Nature) String() string {
	if !n.valid() {
		return fmt.Sprintf("Nature(%d)", n)
	}
	return natureNames[n]
}

func (n Nature) valid() bool { return int(n) < len(natureNames) }

func ParseNature(label string) (n Nature, err error) {
	for i, name := range natureNames {
		if matchLabel(label, name) {
			return Nature(i), nil
		}
	}
	return NoNature, fmt.Errorf("%q: %w", label, ErrUnknownNature)
}

// matchLabel compares case insensitively, ignoring '_' and spaces, so that
// "on cells", "OnCells" and "ON_CELLS" are all accepted
func matchLabel(label, name string) bool {
	norm := func(s string) string {
		return strings.ToLower(strings.NewReplacer("_", "", " ", "", "-", "").Replace(s))
	}
	return norm(label) == norm(name)
}
