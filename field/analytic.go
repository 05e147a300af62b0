package field

import (
	"fmt"
	"math"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// AnalyticFunc writes the field value at position pos into out, which has one
// entry per component and arrives zeroed
type AnalyticFunc func(pos []float64, out []float64) error

// Scalar broadcasts a single valued function to every component
func Scalar(f func(pos []float64) float64) AnalyticFunc {
	return func(pos []float64, out []float64) error {
		val := f(pos)
		for n := range out {
			out[n] = val
		}
		return nil
	}
}

// coord returns pos[n], or 0 where the mesh has fewer dimensions
func coord(pos []float64, n int) float64 {
	if n < len(pos) {
		return pos[n]
	}
	return 0
}

var coordNames = []string{"x", "y", "z"}

var analyticFuncs = map[string]AnalyticFunc{
	"one": Scalar(func(pos []float64) float64 { return 1 }),
	"radius": Scalar(func(pos []float64) float64 {
		var sum float64
		for _, x := range pos {
			sum += x * x
		}
		return math.Sqrt(sum)
	}),
	// Position vector, extra components left at zero
	"position": func(pos []float64, out []float64) error {
		copy(out, pos)
		return nil
	},
}

func toFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func unary(name string, f func(float64) float64) expr.Option {
	return expr.Function(name, func(params ...interface{}) (interface{}, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s takes 1 argument, got %d", name, len(params))
		}
		x, err := toFloat(params[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return f(x), nil
	})
}

func binary(name string, f func(float64, float64) float64) expr.Option {
	return expr.Function(name, func(params ...interface{}) (interface{}, error) {
		if len(params) != 2 {
			return nil, fmt.Errorf("%s takes 2 arguments, got %d", name, len(params))
		}
		a, err := toFloat(params[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		b, err := toFloat(params[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return f(a, b), nil
	})
}

func coordEnv(pos []float64) map[string]interface{} {
	env := make(map[string]interface{}, len(coordNames))
	for n, name := range coordNames {
		env[name] = coord(pos, n)
	}
	return env
}

/*
Expression compiles a scalar expression over the coordinates x, y and z, for
example "x + y" or "sin(x)*cos(y)", into a function that broadcasts its value
to every component. Coordinates beyond the mesh dimension read as 0.

Available functions: sin, cos, tan, exp, log, sqrt, atan2, pow, plus the
expression language builtins (abs, min, max, floor, ceil, ...).
*/
func Expression(src string) (fn AnalyticFunc, err error) {
	var (
		program *vm.Program
	)
	if program, err = expr.Compile(src,
		expr.Env(coordEnv(nil)),
		expr.AsFloat64(),
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("tan", math.Tan),
		unary("exp", math.Exp),
		unary("log", math.Log),
		unary("sqrt", math.Sqrt),
		binary("atan2", math.Atan2),
		binary("pow", math.Pow),
	); err != nil {
		return nil, fmt.Errorf("%q: %v: %w", src, err, ErrUnknownFunction)
	}
	fn = func(pos []float64, out []float64) error {
		res, err := expr.Run(program, coordEnv(pos))
		if err != nil {
			return fmt.Errorf("evaluating %q at %v: %w", src, pos, err)
		}
		val, err := toFloat(res)
		if err != nil {
			return fmt.Errorf("evaluating %q at %v: %w", src, pos, err)
		}
		for n := range out {
			out[n] = val
		}
		return nil
	}
	return
}

// LookupAnalytic resolves a named function, or compiles name as an expression
func LookupAnalytic(name string) (fn AnalyticFunc, err error) {
	var ok bool
	if fn, ok = analyticFuncs[name]; ok {
		return
	}
	return Expression(name)
}

func AnalyticNames() (names []string) {
	for name := range analyticFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
