package srgb

// Matrix is a row-major 3×3 matrix.
type Matrix [3][3]float64

// Apply returns m·v.
func (m Matrix) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// XYZToLinear maps CIE XYZ to linear sRGB primaries (D65 white).
var XYZToLinear = Matrix{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}
