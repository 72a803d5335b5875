// Package integrate provides numerical quadrature over sampled grids.
package integrate

import (
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"
)

// Trapezoid returns the trapezoidal-rule integral of f over the grid x.
//
// x must be sorted ascending, and x and f must have equal length of at least
// two. Violations are reported as errors rather than panics.
func Trapezoid(x, f []float64) (float64, error) {
	if err := validate(x, f); err != nil {
		return 0, err
	}

	return integrate.Trapezoidal(x, f), nil
}

// WeightedTrapezoid integrates the pointwise product f·w over x. scratch is
// reused when it has sufficient capacity.
func WeightedTrapezoid(x, f, w, scratch []float64) (float64, error) {
	if len(w) != len(f) {
		return 0, errMismatchedLength
	}
	if err := validate(x, f); err != nil {
		return 0, err
	}

	if cap(scratch) < len(f) {
		scratch = make([]float64, len(f))
	}
	scratch = scratch[:len(f)]
	vecmath.MulBlock(scratch, f, w)

	return integrate.Trapezoidal(x, scratch), nil
}

func validate(x, f []float64) error {
	if len(x) != len(f) {
		return errMismatchedLength
	}
	if len(x) < 2 {
		return errTooShort
	}
	if !sort.Float64sAreSorted(x) {
		return errUnsorted
	}
	return nil
}
