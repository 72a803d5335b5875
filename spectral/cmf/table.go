// Package cmf holds CIE color-matching function tables.
package cmf

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-spectral/internal/tabular"
)

// Table is a color-matching function table: three observer response curves
// sampled on a shared, ascending wavelength grid. A Table is read-only once
// constructed.
type Table struct {
	wavelengths []float64
	x           []float64
	y           []float64
	z           []float64
}

// New returns a Table holding copies of the given columns.
func New(wavelengths, x, y, z []float64) (*Table, error) {
	if err := validateTable(wavelengths, x, y, z); err != nil {
		return nil, err
	}
	return &Table{
		wavelengths: append([]float64(nil), wavelengths...),
		x:           append([]float64(nil), x...),
		y:           append([]float64(nil), y...),
		z:           append([]float64(nil), z...),
	}, nil
}

// Parse reads a CSV table with a header row and columns wavelength, x̄, ȳ, z̄.
// Lines starting with '#' are ignored; columns beyond the fourth are ignored.
func Parse(r io.Reader) (*Table, error) {
	cols, err := tabular.Read(r, 4)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return New(cols[0], cols[1], cols[2], cols[3])
}

// Load reads the CMF table stored at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Len returns the number of grid points.
func (t *Table) Len() int { return len(t.wavelengths) }

// Wavelengths returns the grid. The slice must not be modified.
func (t *Table) Wavelengths() []float64 { return t.wavelengths }

// X returns the x̄ curve. The slice must not be modified.
func (t *Table) X() []float64 { return t.x }

// Y returns the ȳ curve. The slice must not be modified.
func (t *Table) Y() []float64 { return t.y }

// Z returns the z̄ curve. The slice must not be modified.
func (t *Table) Z() []float64 { return t.z }

// Curves returns x̄, ȳ and z̄ in order.
func (t *Table) Curves() [3][]float64 {
	return [3][]float64{t.x, t.y, t.z}
}

// Range returns the first and last grid wavelengths.
func (t *Table) Range() (lo, hi float64) {
	return t.wavelengths[0], t.wavelengths[len(t.wavelengths)-1]
}
