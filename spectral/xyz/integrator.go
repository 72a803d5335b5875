// Package xyz projects sampled spectra onto the CIE color-matching functions.
package xyz

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/cmf"
	"github.com/cwbudde/algo-spectral/spectral/integrate"
	"github.com/cwbudde/algo-spectral/spectral/interp"
	"github.com/cwbudde/algo-spectral/spectral/sampling"
)

// Tristimulus is a CIE XYZ value.
type Tristimulus [3]float64

// X returns the first component.
func (t Tristimulus) X() float64 { return t[0] }

// Y returns the luminance component.
func (t Tristimulus) Y() float64 { return t[1] }

// Z returns the third component.
func (t Tristimulus) Z() float64 { return t[2] }

// Integrator converts sampled spectra to XYZ against a CMF table.
//
// The zero value has no table and every conversion fails with ErrNotLoaded.
// The table is set exactly once with Load or SetTable and is read-only
// afterwards. Conversions reuse internal scratch buffers, so an Integrator
// is not safe for concurrent use.
type Integrator struct {
	table   *cmf.Table
	scratch []float64
	product []float64
}

// NewIntegrator returns an Integrator using t. A nil t yields an unloaded
// Integrator.
func NewIntegrator(t *cmf.Table) *Integrator {
	return &Integrator{table: t}
}

// Load reads the CMF table at path and installs it.
func (in *Integrator) Load(path string) error {
	if in.table != nil {
		return ErrAlreadyLoaded
	}
	t, err := cmf.Load(path)
	if err != nil {
		return err
	}
	return in.SetTable(t)
}

// SetTable installs t.
func (in *Integrator) SetTable(t *cmf.Table) error {
	if in.table != nil {
		return ErrAlreadyLoaded
	}
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrNotLoaded)
	}
	in.table = t
	return nil
}

// Loaded reports whether a table is installed.
func (in *Integrator) Loaded() bool { return in.table != nil }

// Table returns the installed table or ErrNotLoaded.
func (in *Integrator) Table() (*cmf.Table, error) {
	if in.table == nil {
		return nil, ErrNotLoaded
	}
	return in.table, nil
}

// SpectrumToXYZ interpolates values (as a function of wavelengths) onto the
// CMF grid, extrapolating flat outside the sampled range, and integrates the
// product with each of x̄, ȳ and z̄ by the trapezoidal rule.
//
// A single sampled point becomes a constant over the whole grid, so a hero
// sample integrates to value·∫cmf rather than a per-wavelength estimate.
func (in *Integrator) SpectrumToXYZ(wavelengths, values []float64) (Tristimulus, error) {
	if in.table == nil {
		return Tristimulus{}, ErrNotLoaded
	}
	if len(wavelengths) != len(values) {
		return Tristimulus{}, fmt.Errorf("%w: %d wavelengths, %d values", ErrMismatchedSamples, len(wavelengths), len(values))
	}
	if len(wavelengths) == 0 {
		return Tristimulus{}, ErrEmptySamples
	}

	wl, vals := sortedView(wavelengths, values)

	grid := in.table.Wavelengths()
	if cap(in.scratch) < len(grid) {
		in.scratch = make([]float64, len(grid))
		in.product = make([]float64, len(grid))
	}
	resampled := interp.LinearInto(in.scratch, grid, wl, vals)

	var out Tristimulus
	for i, curve := range in.table.Curves() {
		v, err := integrate.WeightedTrapezoid(grid, resampled, curve, in.product)
		if err != nil {
			return Tristimulus{}, err
		}
		out[i] = v
	}
	return out, nil
}

// Convert is SpectrumToXYZ applied to a sampled point set.
func (in *Integrator) Convert(p sampling.Points) (Tristimulus, error) {
	return in.SpectrumToXYZ(p.Wavelengths, p.Values)
}
