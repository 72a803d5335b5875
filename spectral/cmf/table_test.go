package cmf

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tab, err := Load(filepath.Join("testdata", "unit.csv"))
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, []float64{400, 500, 600}, tab.Wavelengths())
	assert.Equal(t, []float64{1, 1, 1}, tab.Z())

	lo, hi := tab.Range()
	assert.Equal(t, 400.0, lo)
	assert.Equal(t, 600.0, hi)
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		file string
		want error
	}{
		{"missing.csv", ErrFile},
		{"three_cols.csv", ErrParse},
		{"unsorted.csv", ErrParse},
	} {
		t.Run(tc.file, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tc.file))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseSinglePoint(t *testing.T) {
	_, err := Parse(strings.NewReader("wl,x,y,z\n555,1,1,1\n"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestNewValidates(t *testing.T) {
	_, err := New([]float64{400, 500}, []float64{1, 1}, []float64{1}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrParse)
}

func TestNewCopies(t *testing.T) {
	wl := []float64{400, 500}
	x := []float64{1, 2}
	tab, err := New(wl, x, x, x)
	require.NoError(t, err)
	x[0] = 9
	assert.Equal(t, 1.0, tab.X()[0])
	assert.Equal(t, 1.0, tab.Curves()[1][0])
}
