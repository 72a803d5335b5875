package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryLookup(t *testing.T) {
	lib := NewLibrary()
	s := MustNew([]float64{400}, []float64{1})
	lib.Add("A1_white", s)

	got, err := lib.Lookup("A1_white")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = lib.Lookup("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestLibraryAddMissing(t *testing.T) {
	lib := NewLibrary()
	first := MustNew([]float64{400}, []float64{1})
	second := MustNew([]float64{400}, []float64{2})

	assert.True(t, lib.AddMissing("lamp", first))
	assert.False(t, lib.AddMissing("lamp", second))

	got, err := lib.Lookup("lamp")
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Equal(t, 1, lib.Len())
}
