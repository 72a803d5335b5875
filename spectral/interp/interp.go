package interp

import (
	"math"
	"sort"
)

// Search returns the index i such that xp[i-1] < x <= xp[i] for interior
// queries. It returns 0 when x <= xp[0] and len(xp) when x > xp[len(xp)-1].
func Search(xp []float64, x float64) int {
	return sort.SearchFloat64s(xp, x)
}

// Linear interpolates the table (xp, fp) at x.
//
// xp must be ascending and fp must have at least len(xp) elements. An empty
// table yields 0; a single-node table yields its only ordinate for every x.
// NaN queries return NaN.
func Linear(x float64, xp, fp []float64) float64 {
	n := len(xp)
	if n == 0 {
		return 0
	}
	if math.IsNaN(x) {
		return x
	}
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[n-1] {
		return fp[n-1]
	}

	i := Search(xp, x)
	if xp[i] == x {
		return fp[i]
	}

	x0, x1 := xp[i-1], xp[i]
	y0, y1 := fp[i-1], fp[i]
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// LinearInto interpolates (xp, fp) at every element of xs and writes the
// results to dst, which must be at least len(xs) long. It returns dst[:len(xs)].
func LinearInto(dst, xs, xp, fp []float64) []float64 {
	dst = dst[:len(xs)]
	for i, x := range xs {
		dst[i] = Linear(x, xp, fp)
	}
	return dst
}
