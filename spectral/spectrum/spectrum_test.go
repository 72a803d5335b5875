package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLengthMismatch(t *testing.T) {
	_, err := New([]float64{400, 500, 600}, []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch), "err = %v", err)
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNewCopiesInput(t *testing.T) {
	wl := []float64{400, 500}
	v := []float64{1, 2}
	s, err := New(wl, v)
	require.NoError(t, err)

	wl[0], v[0] = 0, 99
	assert.Equal(t, 400.0, s.WavelengthAt(0))
	assert.Equal(t, 1.0, s.ValueAt(0))

	out := s.Values()
	out[1] = -1
	assert.Equal(t, 2.0, s.ValueAt(1))
}

func TestAtExactAtSamples(t *testing.T) {
	s := MustNew([]float64{380, 412.5, 555, 730}, []float64{0.01, 0.333, 1, 0.7})
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, s.ValueAt(i), s.At(s.WavelengthAt(i)), "sample %d", i)
	}
}

func TestAtFlatExtrapolation(t *testing.T) {
	s := MustNew([]float64{400, 500, 600}, []float64{2, 3, 5})
	for _, wl := range []float64{0, 380, 399.9} {
		assert.Equal(t, 2.0, s.At(wl), "wl=%v", wl)
	}
	for _, wl := range []float64{600.1, 730, 1e6} {
		assert.Equal(t, 5.0, s.At(wl), "wl=%v", wl)
	}
	assert.InDelta(t, 4.0, s.At(550), 1e-12)
}

func TestMinMax(t *testing.T) {
	s := MustNew([]float64{380, 500, 780}, []float64{1, 1, 1})
	assert.Equal(t, 380.0, s.Min())
	assert.Equal(t, 780.0, s.Max())
	assert.Equal(t, 3, s.Len())
}

func TestAtEach(t *testing.T) {
	s := MustNew([]float64{0, 10}, []float64{0, 1})
	got := s.AtEach(nil, []float64{-5, 5, 15})
	assert.Equal(t, []float64{0, 0.5, 1}, got)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew([]float64{1}, nil) })
}

func TestNaNValuesStored(t *testing.T) {
	s := MustNew([]float64{400}, []float64{math.NaN()})
	assert.True(t, math.IsNaN(s.At(400)))
}
