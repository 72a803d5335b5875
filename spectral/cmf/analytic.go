package cmf

import (
	"math"

	"github.com/cwbudde/algo-spectral/spectral/core"
)

// lobe is one asymmetric Gaussian term: weight·exp(-½((λ-mu)/σ)²) with
// σ = lo below mu and σ = hi above.
type lobe struct {
	weight, mu, lo, hi float64
}

func (l lobe) eval(wl float64) float64 {
	s := l.hi
	if wl < l.mu {
		s = l.lo
	}
	t := (wl - l.mu) / s
	return l.weight * math.Exp(-0.5*t*t)
}

// Multi-lobe fit of the CIE 1931 2° observer (Wyman, Sloan & Shirley,
// JCGT 2(2), 2013).
var (
	lobesX = []lobe{{1.056, 599.8, 37.9, 31.0}, {0.362, 442.0, 16.0, 26.7}, {-0.065, 501.1, 20.4, 26.2}}
	lobesY = []lobe{{0.821, 568.8, 46.9, 40.5}, {0.286, 530.9, 16.3, 31.1}}
	lobesZ = []lobe{{1.217, 437.0, 11.8, 36.0}, {0.681, 459.0, 26.0, 13.8}}
)

func sumLobes(lobes []lobe, wl float64) float64 {
	var v float64
	for _, l := range lobes {
		v += l.eval(wl)
	}
	return v
}

// CIE1931 evaluates the analytic CIE 1931 approximation on grid. The fit is
// within a few percent of the tabulated observer over the visible range.
func CIE1931(grid []float64) (*Table, error) {
	x := make([]float64, len(grid))
	y := make([]float64, len(grid))
	z := make([]float64, len(grid))
	for i, wl := range grid {
		x[i] = sumLobes(lobesX, wl)
		y[i] = sumLobes(lobesY, wl)
		z[i] = sumLobes(lobesZ, wl)
	}
	return New(grid, x, y, z)
}

// Default returns the analytic CIE 1931 table on the 5 nm visible grid.
func Default() *Table {
	t, err := CIE1931(core.VisibleGrid())
	if err != nil {
		panic(err)
	}
	return t
}
