// Package illuminant generates analytic light-source spectra.
//
// CIE standard illuminant A is defined by Planck's law at 2856 K and is
// computed here from the CIE formula rather than tabulated. Equal-energy
// illuminant E is constant. All spectra are normalised to 100 at 560 nm.
package illuminant

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// Library names of the built-in illuminants.
const (
	NameA = "illuminant_A"
	NameE = "illuminant_E"
)

const (
	// c2A is the second radiation constant in nm·K as fixed by the CIE
	// definition of illuminant A; c2 is its current CODATA value.
	c2A = 1.435e7
	c2  = 1.4388e7

	temperatureA = 2848.0
	normWL       = 560.0
	normValue    = 100.0
)

var errEmptyGrid = errors.New("illuminant: wavelength grid must not be empty")

// A returns CIE standard illuminant A evaluated on grid.
func A(grid []float64) (*spectrum.Spectrum, error) {
	if len(grid) == 0 {
		return nil, errEmptyGrid
	}
	values := make([]float64, len(grid))
	num := math.Exp(c2A/(temperatureA*normWL)) - 1
	for i, wl := range grid {
		values[i] = normValue * math.Pow(normWL/wl, 5) * num / (math.Exp(c2A/(temperatureA*wl)) - 1)
	}
	return spectrum.New(grid, values)
}

// E returns the equal-energy illuminant evaluated on grid.
func E(grid []float64) (*spectrum.Spectrum, error) {
	if len(grid) == 0 {
		return nil, errEmptyGrid
	}
	values := make([]float64, len(grid))
	for i := range values {
		values[i] = normValue
	}
	return spectrum.New(grid, values)
}

// Blackbody returns the relative spectral power of a Planckian radiator at
// kelvin, evaluated on grid.
func Blackbody(kelvin float64, grid []float64) (*spectrum.Spectrum, error) {
	if !(kelvin > 0) || math.IsInf(kelvin, 0) {
		return nil, fmt.Errorf("illuminant: temperature must be > 0 and finite: %g", kelvin)
	}
	if len(grid) == 0 {
		return nil, errEmptyGrid
	}

	values := make([]float64, len(grid))
	for i, wl := range grid {
		values[i] = planck(wl, kelvin)
	}
	vecmath.ScaleBlockInPlace(values, normValue/planck(normWL, kelvin))
	return spectrum.New(grid, values)
}

// planck returns the unnormalised spectral radiance at wl nm.
func planck(wl, kelvin float64) float64 {
	return math.Pow(wl, -5) / math.Expm1(c2/(wl*kelvin))
}

// Register adds the built-in illuminants to lib on the visible grid without
// replacing entries that are already present.
func Register(lib *spectrum.Library) error {
	grid := core.VisibleGrid()
	a, err := A(grid)
	if err != nil {
		return err
	}
	e, err := E(grid)
	if err != nil {
		return err
	}
	lib.AddMissing(NameA, a)
	lib.AddMissing(NameE, e)
	return nil
}
