package experiment

import (
	"testing"

	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialsFixedHasZeroVariance(t *testing.T) {
	r := unitRunner(t)
	s, err := r.Trials(Spec{Lamp: "ramp", Refl: "half", Method: sampling.Fixed{Count: 16}}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Runs)
	for i, sd := range s.StdDev() {
		assert.InDelta(t, 0, sd, 1e-12, "channel %d", i)
	}
	assert.Equal(t, s.Last.RGB[0], s.Mean()[0])
}

func TestTrialsHeroVaries(t *testing.T) {
	r := unitRunner(t, WithSampler(sampling.New(core.WithSeed(1))))
	s, err := r.Trials(Spec{Lamp: "ramp", Refl: "flat", Method: sampling.Hero{}}, 64)
	require.NoError(t, err)
	assert.Greater(t, s.StdDev()[1], 0.0)
	assert.LessOrEqual(t, s.RGB[1].Min, s.RGB[1].Mean)
	assert.GreaterOrEqual(t, s.RGB[1].Max, s.RGB[1].Mean)
}

func TestTrialsErrors(t *testing.T) {
	r := unitRunner(t)
	_, err := r.Trials(Spec{Lamp: "flat", Refl: "flat", Method: sampling.Hero{}}, 0)
	assert.Error(t, err)

	_, err = r.Trials(Spec{Lamp: "dark", Refl: "flat", Method: sampling.Hero{}}, 3)
	assert.ErrorIs(t, err, sampling.ErrDegenerateDistribution)
	assert.Contains(t, err.Error(), "trial 1")
}
