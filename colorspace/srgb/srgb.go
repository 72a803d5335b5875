// Package srgb converts CIE XYZ tristimulus values to sRGB.
//
// The conversion applies the fixed D65 matrix, clamps negative components to
// zero and optionally applies the piecewise sRGB transfer function. No upper
// clip is applied: out-of-gamut or high-power inputs produce components above
// one and are returned as is.
package srgb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/lucasb-eyer/go-colorful"
)

// Breakpoint of the sRGB transfer function in linear light.
const Breakpoint = 0.0031308

// RGB is an sRGB triple, linear or gamma encoded depending on how it was
// produced.
type RGB [3]float64

// FromXYZ converts xyz to sRGB. With applyGamma false the clipped linear
// values are returned.
func FromXYZ(xyz [3]float64, applyGamma bool) RGB {
	rgb := Linear(xyz)
	if !applyGamma {
		return rgb
	}
	return rgb.Encoded()
}

// Linear applies XYZToLinear and clamps each component to [0, +Inf).
func Linear(xyz [3]float64) RGB {
	lin := XYZToLinear.Apply(xyz)
	for i := range lin {
		lin[i] = core.ClampMin(lin[i], 0)
	}
	return RGB(lin)
}

// Encode applies the sRGB transfer function to a linear component.
func Encode(u float64) float64 {
	if u <= Breakpoint {
		return 12.92 * u
	}
	return 1.055*math.Pow(u, 1/2.4) - 0.055
}

// Decode inverts Encode.
func Decode(v float64) float64 {
	if v <= 12.92*Breakpoint {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Encoded returns c with Encode applied per channel.
func (c RGB) Encoded() RGB {
	return RGB{Encode(c[0]), Encode(c[1]), Encode(c[2])}
}

// Decoded returns c with Decode applied per channel.
func (c RGB) Decoded() RGB {
	return RGB{Decode(c[0]), Decode(c[1]), Decode(c[2])}
}

// Colorful returns c, taken as gamma-encoded sRGB, clamped into [0, 1].
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}.Clamped()
}

// Hex formats c, taken as gamma-encoded sRGB, as #rrggbb after clamping.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// InGamut reports whether every component lies in [0, 1].
func (c RGB) InGamut() bool {
	return c.Colorful() == colorful.Color{R: c[0], G: c[1], B: c[2]}
}

// DeltaE returns the CIEDE2000 distance between a and b, both taken as
// gamma-encoded sRGB and clamped into gamut first.
func DeltaE(a, b RGB) float64 {
	return a.Colorful().DistanceCIEDE2000(b.Colorful())
}

// String formats c like a numeric vector: [r g b].
func (c RGB) String() string {
	return fmt.Sprintf("[%.8g %.8g %.8g]", c[0], c[1], c[2])
}
