package trial

import (
	"math"
	"testing"
)

func TestCalculateEmpty(t *testing.T) {
	if got := Calculate(nil); got != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero", got)
	}
}

func TestCalculateMatchesTwoPass(t *testing.T) {
	series := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	got := Calculate(series)

	if got.Count != 8 {
		t.Fatalf("Count = %d, want 8", got.Count)
	}
	if math.Abs(got.Mean-5) > 1e-12 {
		t.Fatalf("Mean = %v, want 5", got.Mean)
	}
	if math.Abs(got.Variance-4) > 1e-12 {
		t.Fatalf("Variance = %v, want 4", got.Variance)
	}
	if math.Abs(got.StdDev-2) > 1e-12 {
		t.Fatalf("StdDev = %v, want 2", got.StdDev)
	}
	if got.Min != 2 || got.Max != 9 {
		t.Fatalf("Min/Max = %v/%v, want 2/9", got.Min, got.Max)
	}
}

func TestConstantSeriesHasZeroVariance(t *testing.T) {
	got := Calculate([]float64{0.3, 0.3, 0.3})
	if got.Variance > 1e-30 {
		t.Fatalf("Variance = %v, want 0", got.Variance)
	}
}

func TestNegativeSeriesMinMax(t *testing.T) {
	got := Calculate([]float64{-1, -5, -3})
	if got.Min != -5 || got.Max != -1 {
		t.Fatalf("Min/Max = %v/%v, want -5/-1", got.Min, got.Max)
	}
}

func TestVec3(t *testing.T) {
	var v Vec3
	v.Add([3]float64{1, 10, 0})
	v.Add([3]float64{3, 10, 0})
	got := v.Result()
	if got[0].Mean != 2 || got[0].Variance != 1 {
		t.Fatalf("channel 0 = %+v", got[0])
	}
	if got[1].StdDev != 0 || got[2].Mean != 0 {
		t.Fatalf("channels 1/2 = %+v %+v", got[1], got[2])
	}
}

func TestReset(t *testing.T) {
	var a Accumulator
	a.Add(4)
	a.Reset()
	if got := a.Result(); got.Count != 0 {
		t.Fatalf("Count after reset = %d", got.Count)
	}
}
