package sampling

import (
	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/spectrum"
)

// SampleFixed is shorthand for New(opts...).Fixed(lamp, refl, m).
func SampleFixed(lamp, refl *spectrum.Spectrum, m int, opts ...core.SamplerOption) (Points, error) {
	return New(opts...).Fixed(lamp, refl, m)
}

// SampleRandom is shorthand for New(opts...).Random(lamp, refl, n).
func SampleRandom(lamp, refl *spectrum.Spectrum, n int, opts ...core.SamplerOption) (Points, error) {
	return New(opts...).Random(lamp, refl, n)
}

// SampleHero is shorthand for New(opts...).Hero(lamp, refl).
func SampleHero(lamp, refl *spectrum.Spectrum, opts ...core.SamplerOption) (Points, error) {
	return New(opts...).Hero(lamp, refl)
}
