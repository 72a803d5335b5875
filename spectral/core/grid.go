package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bounds of the default color-matching grid, in nanometres.
const (
	VisibleMin  = 380.0
	VisibleMax  = 780.0
	VisibleStep = 5.0
)

// Linspace returns n evenly spaced values on the closed interval [lo, hi].
// The last value is exactly hi. n == 1 yields [lo]; n <= 0 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := floats.Span(make([]float64, n), lo, hi)
	out[n-1] = hi
	return out
}

// Grid returns the wavelengths lo, lo+step, ... up to hi inclusive. The
// number of points is rounded so that hi is hit exactly when (hi-lo)/step is
// integral.
func Grid(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo {
		return nil
	}
	n := int(math.Floor((hi-lo)/step+1e-9)) + 1
	return Linspace(lo, lo+float64(n-1)*step, n)
}

// VisibleGrid returns the 5 nm grid over [380, 780] nm.
func VisibleGrid() []float64 {
	return Grid(VisibleMin, VisibleMax, VisibleStep)
}
