// Package trial accumulates statistics over repeated experiment outcomes,
// one accumulator per color channel.
package trial

import "math"

// Stats holds running statistics of one scalar series.
type Stats struct {
	Count    int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      float64
	Max      float64
}

// Accumulator updates mean and variance with Welford's online algorithm.
type Accumulator struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

// Add folds x into the accumulator.
func (a *Accumulator) Add(x float64) {
	a.n++
	if a.n == 1 {
		a.min, a.max = x, x
	} else {
		a.min = math.Min(a.min, x)
		a.max = math.Max(a.max, x)
	}

	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

// Result returns the statistics so far. An empty accumulator yields zeros.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{}
	}
	variance := a.m2 / float64(a.n)
	return Stats{
		Count:    a.n,
		Mean:     a.mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      a.min,
		Max:      a.max,
	}
}

// Reset clears the accumulator.
func (a *Accumulator) Reset() { *a = Accumulator{} }

// Vec3 accumulates three channels in lockstep.
type Vec3 struct {
	ch [3]Accumulator
}

// Add folds v into each channel.
func (v *Vec3) Add(x [3]float64) {
	for i := range v.ch {
		v.ch[i].Add(x[i])
	}
}

// Result returns per-channel statistics.
func (v *Vec3) Result() [3]Stats {
	return [3]Stats{v.ch[0].Result(), v.ch[1].Result(), v.ch[2].Result()}
}

// Calculate returns the statistics of series in a single pass.
func Calculate(series []float64) Stats {
	var a Accumulator
	for _, x := range series {
		a.Add(x)
	}
	return a.Result()
}
