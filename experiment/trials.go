package experiment

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-spectral/stats/trial"
)

// Summary aggregates repeated runs of one Spec.
type Summary struct {
	Spec    Spec
	Runs    int
	RGB     [3]trial.Stats
	Elapsed trial.Stats // seconds
	Last    Result
}

// Trials runs spec n times and accumulates per-channel RGB statistics.
// Deterministic methods yield zero variance.
func (r *Runner) Trials(spec Spec, n int) (Summary, error) {
	if n < 1 {
		return Summary{}, fmt.Errorf("experiment: trial count must be >= 1: %d", n)
	}

	var (
		rgb     trial.Vec3
		elapsed trial.Accumulator
		last    Result
	)
	for i := 0; i < n; i++ {
		res, err := r.Run(spec)
		if err != nil {
			return Summary{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
		rgb.Add(res.RGB)
		elapsed.Add(res.Elapsed.Seconds())
		last = res
	}

	s := Summary{
		Spec:    spec,
		Runs:    n,
		RGB:     rgb.Result(),
		Elapsed: elapsed.Result(),
		Last:    last,
	}
	Logger().Info("trials complete",
		"lamp", spec.Lamp, "refl", spec.Refl, "method", spec.Method.Name(),
		"runs", n, "mean_elapsed", time.Duration(s.Elapsed.Mean*float64(time.Second)))
	return s, nil
}

// Mean returns the mean RGB over all trials.
func (s Summary) Mean() [3]float64 {
	return [3]float64{s.RGB[0].Mean, s.RGB[1].Mean, s.RGB[2].Mean}
}

// StdDev returns the per-channel standard deviation over all trials.
func (s Summary) StdDev() [3]float64 {
	return [3]float64{s.RGB[0].StdDev, s.RGB[1].StdDev, s.RGB[2].StdDev}
}
