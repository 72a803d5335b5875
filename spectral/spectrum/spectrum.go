// Package spectrum represents sampled spectral quantities such as lamp
// irradiance or surface reflectance.
package spectrum

import (
	"github.com/cwbudde/algo-spectral/spectral/interp"
)

// Spectrum is an immutable pair of wavelength samples (nm) and values.
//
// Wavelengths are expected to increase strictly; this is not enforced.
type Spectrum struct {
	wavelengths []float64
	values      []float64
	minWL       float64
	maxWL       float64
}

// New returns a Spectrum holding copies of wavelengths and values.
func New(wavelengths, values []float64) (*Spectrum, error) {
	if err := validateLengths(wavelengths, values); err != nil {
		return nil, err
	}

	s := &Spectrum{
		wavelengths: append([]float64(nil), wavelengths...),
		values:      append([]float64(nil), values...),
	}
	s.minWL, s.maxWL = s.wavelengths[0], s.wavelengths[0]
	for _, wl := range s.wavelengths[1:] {
		if wl < s.minWL {
			s.minWL = wl
		}
		if wl > s.maxWL {
			s.maxWL = wl
		}
	}

	return s, nil
}

// MustNew is like New but panics on error. Intended for static tables.
func MustNew(wavelengths, values []float64) *Spectrum {
	s, err := New(wavelengths, values)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of samples.
func (s *Spectrum) Len() int { return len(s.wavelengths) }

// Min returns the smallest stored wavelength.
func (s *Spectrum) Min() float64 { return s.minWL }

// Max returns the largest stored wavelength.
func (s *Spectrum) Max() float64 { return s.maxWL }

// WavelengthAt returns the i-th stored wavelength.
func (s *Spectrum) WavelengthAt(i int) float64 { return s.wavelengths[i] }

// ValueAt returns the i-th stored value.
func (s *Spectrum) ValueAt(i int) float64 { return s.values[i] }

// Wavelengths returns a copy of the stored wavelengths.
func (s *Spectrum) Wavelengths() []float64 {
	return append([]float64(nil), s.wavelengths...)
}

// Values returns a copy of the stored values.
func (s *Spectrum) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// At evaluates the spectrum at wl by linear interpolation. Outside the stored
// range the nearest boundary value is returned.
func (s *Spectrum) At(wl float64) float64 {
	return interp.Linear(wl, s.wavelengths, s.values)
}

// AtEach evaluates the spectrum at every wavelength in wls and writes the
// results to dst. A nil or short dst is replaced by a new slice.
func (s *Spectrum) AtEach(dst, wls []float64) []float64 {
	if cap(dst) < len(wls) {
		dst = make([]float64, len(wls))
	}
	return interp.LinearInto(dst, wls, s.wavelengths, s.values)
}
