package experiment

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/colorspace/srgb"
	"github.com/cwbudde/algo-spectral/spectral/sampling"
)

// Grid holds one Result per (reflectance, lamp) pair; rows are reflectances.
type Grid struct {
	Lamps  []string
	Refls  []string
	Method string
	Cells  [][]Result
}

// At returns the cell for refl row i and lamp column j.
func (g Grid) At(i, j int) Result { return g.Cells[i][j] }

// Table runs method for every lamp/reflectance combination. The first
// failing pair aborts the table.
func (r *Runner) Table(lamps, refls []string, method sampling.Method) (Grid, error) {
	if method == nil {
		return Grid{}, fmt.Errorf("%w: no method", sampling.ErrUnknownMethod)
	}

	g := Grid{
		Lamps:  append([]string(nil), lamps...),
		Refls:  append([]string(nil), refls...),
		Method: method.Name(),
		Cells:  make([][]Result, len(refls)),
	}
	for i, refl := range refls {
		g.Cells[i] = make([]Result, len(lamps))
		for j, lamp := range lamps {
			res, err := r.Run(Spec{Lamp: lamp, Refl: refl, Method: method})
			if err != nil {
				return Grid{}, fmt.Errorf("%s × %s: %w", lamp, refl, err)
			}
			g.Cells[i][j] = res
		}
	}
	return g, nil
}

// Comparison pairs a result with a reference result for the same spectra.
type Comparison struct {
	Result    Result
	Reference Result
	// DeltaE is the CIEDE2000 distance between the gamma-encoded colors.
	DeltaE float64
}

// Compare runs spec and the same spectra under reference, and reports the
// perceptual distance between the two colors.
func (r *Runner) Compare(spec Spec, reference sampling.Method) (Comparison, error) {
	res, err := r.Run(spec)
	if err != nil {
		return Comparison{}, err
	}
	ref, err := r.Run(Spec{Lamp: spec.Lamp, Refl: spec.Refl, Method: reference})
	if err != nil {
		return Comparison{}, fmt.Errorf("reference: %w", err)
	}
	return Comparison{
		Result:    res,
		Reference: ref,
		DeltaE:    srgb.DeltaE(res.Encoded(), ref.Encoded()),
	}, nil
}
