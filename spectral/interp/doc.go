// Package interp provides piecewise-linear table interpolation used to
// evaluate sampled spectra and to resample them onto a color-matching grid.
//
// Tables are given as parallel slices xp (abscissae, ascending) and fp
// (ordinates). Queries outside [xp[0], xp[len-1]] return the nearest boundary
// ordinate (flat extrapolation) and queries at a node return the stored
// ordinate exactly:
//
//   - [Linear]:     evaluate one query point
//   - [LinearInto]: evaluate many query points into a caller buffer
//   - [Search]:     locate the bracketing interval of a query point
package interp
