// Package sampling reduces a lamp and a reflectance spectrum to a discrete set
// of (wavelength, lamp·reflectance) pairs.
//
// Three strategies are provided:
//
//   - [Fixed]:  deterministic, evenly spaced over 380–730 nm
//   - [Random]: uniform Monte-Carlo over the spectra's common range
//   - [Hero]:   one wavelength importance-sampled from the lamp
//
// Stochastic strategies draw from the source configured with
// [core.WithSource] or [core.WithSeed]; without one they use the global
// math/rand/v2 generator and are not reproducible.
package sampling

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/spectrum"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat/distuv"
)

// Points is a sampled point set: Values[i] is the lamp·reflectance product
// at Wavelengths[i].
type Points struct {
	Wavelengths []float64
	Values      []float64
}

// Len returns the number of sampled points.
func (p Points) Len() int { return len(p.Wavelengths) }

// Sampler runs sampling strategies with a shared configuration.
type Sampler struct {
	cfg core.SamplerConfig
}

// New returns a Sampler configured by opts.
func New(opts ...core.SamplerOption) *Sampler {
	return &Sampler{cfg: core.ApplySamplerOptions(opts...)}
}

// Config returns the sampler configuration.
func (s *Sampler) Config() core.SamplerConfig { return s.cfg }

// Sample dispatches m to its strategy.
func (s *Sampler) Sample(m Method, lamp, refl *spectrum.Spectrum) (Points, error) {
	if lamp == nil || refl == nil {
		return Points{}, ErrNilSpectrum
	}

	switch m := m.(type) {
	case Fixed:
		return s.fixed(lamp, refl, m.Count)
	case Random:
		return s.random(lamp, refl, m.Count)
	case Hero:
		return s.hero(lamp, refl)
	default:
		return Points{}, fmt.Errorf("%w: %T", ErrUnknownMethod, m)
	}
}

// Fixed evaluates both spectra at m evenly spaced wavelengths spanning the
// configured fixed range, 380–730 nm by default, regardless of either
// spectrum's native range.
func (s *Sampler) Fixed(lamp, refl *spectrum.Spectrum, m int) (Points, error) {
	return s.Sample(Fixed{Count: m}, lamp, refl)
}

// Random evaluates both spectra at n uniform draws from the intersection of
// their native ranges.
func (s *Sampler) Random(lamp, refl *spectrum.Spectrum, n int) (Points, error) {
	return s.Sample(Random{Count: n}, lamp, refl)
}

// Hero draws one native lamp wavelength with probability proportional to the
// lamp value there and returns the single product lamp.values[i]·refl(λi).
func (s *Sampler) Hero(lamp, refl *spectrum.Spectrum) (Points, error) {
	return s.Sample(Hero{}, lamp, refl)
}

func (s *Sampler) fixed(lamp, refl *spectrum.Spectrum, m int) (Points, error) {
	if err := validateCount(m); err != nil {
		return Points{}, err
	}
	wl := core.Linspace(s.cfg.FixedMin, s.cfg.FixedMax, m)
	return product(wl, lamp, refl), nil
}

func (s *Sampler) random(lamp, refl *spectrum.Spectrum, n int) (Points, error) {
	if err := validateCount(n); err != nil {
		return Points{}, err
	}
	lo, hi := Overlap(lamp, refl)
	if lo > hi {
		return Points{}, fmt.Errorf("%w: [%g, %g]", ErrNoOverlap, lo, hi)
	}

	u := distuv.Uniform{Min: lo, Max: hi, Src: s.cfg.Source}
	wl := make([]float64, n)
	for i := range wl {
		wl[i] = u.Rand()
	}
	return product(wl, lamp, refl), nil
}

func (s *Sampler) hero(lamp, refl *spectrum.Spectrum) (Points, error) {
	weights := lamp.Values()
	if err := validateDistribution(weights); err != nil {
		return Points{}, err
	}

	idx := int(distuv.NewCategorical(weights, s.cfg.Source).Rand())
	wl := lamp.WavelengthAt(idx)
	return Points{
		Wavelengths: []float64{wl},
		Values:      []float64{lamp.ValueAt(idx) * refl.At(wl)},
	}, nil
}

// Overlap returns the intersection [max(mins), min(maxes)] of the two
// spectra's native wavelength ranges. lo > hi means they do not intersect.
func Overlap(a, b *spectrum.Spectrum) (lo, hi float64) {
	return math.Max(a.Min(), b.Min()), math.Min(a.Max(), b.Max())
}

// Probabilities returns the hero sampling distribution p_i = w_i / Σw.
func Probabilities(weights []float64) ([]float64, error) {
	if err := validateDistribution(weights); err != nil {
		return nil, err
	}
	p := make([]float64, len(weights))
	vecmath.ScaleBlock(p, weights, 1/vecmath.Sum(weights))
	return p, nil
}

func validateDistribution(weights []float64) error {
	if !core.AllFinite(weights) {
		return fmt.Errorf("%w: non-finite value", ErrDegenerateDistribution)
	}
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: negative value %g at index %d", ErrDegenerateDistribution, w, i)
		}
	}
	sum := vecmath.Sum(weights)
	if !(sum > 0) || math.IsInf(sum, 0) {
		return fmt.Errorf("%w: sum %g", ErrDegenerateDistribution, sum)
	}
	return nil
}

func product(wl []float64, lamp, refl *spectrum.Spectrum) Points {
	values := lamp.AtEach(nil, wl)
	vecmath.MulBlockInPlace(values, refl.AtEach(nil, wl))
	return Points{Wavelengths: wl, Values: values}
}
