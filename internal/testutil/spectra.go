package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Constant returns n evenly spaced wavelengths on [lo, hi] with every value
// set to v. n must be at least 2.
func Constant(lo, hi, v float64, n int) (wavelengths, values []float64) {
	wavelengths = make([]float64, n)
	values = make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range wavelengths {
		wavelengths[i] = lo + step*float64(i)
		values[i] = v
	}
	wavelengths[n-1] = hi
	return wavelengths, values
}

// WriteFile writes content to dir/name and returns the path, failing t on error.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// UnitCMF is a three-point CMF table with x̄ = ȳ = z̄ = 1 on 400–600 nm.
const UnitCMF = "wavelength,xbar,ybar,zbar\n400,1,1,1\n500,1,1,1\n600,1,1,1\n"
