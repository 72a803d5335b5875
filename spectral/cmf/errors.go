package cmf

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrFile reports a CMF file that cannot be opened or read.
	ErrFile = errors.New("cmf: file error")
	// ErrParse reports a malformed CMF file or inconsistent table.
	ErrParse = errors.New("cmf: parse error")
)

func validateTable(wl, x, y, z []float64) error {
	n := len(wl)
	if len(x) != n || len(y) != n || len(z) != n {
		return fmt.Errorf("%w: column lengths differ: %d/%d/%d/%d", ErrParse, n, len(x), len(y), len(z))
	}
	if n < 2 {
		return fmt.Errorf("%w: at least two grid points are required: %d", ErrParse, n)
	}
	if !sort.Float64sAreSorted(wl) {
		return fmt.Errorf("%w: wavelength grid must be ascending", ErrParse)
	}
	return nil
}
