package integrate

import (
	"errors"
	"testing"
)

func TestTrapezoidConstant(t *testing.T) {
	got, err := Trapezoid([]float64{400, 500, 600}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("Trapezoid error: %v", err)
	}
	if got != 200 {
		t.Fatalf("Trapezoid = %v, want 200", got)
	}
}

func TestTrapezoidLinearIsExact(t *testing.T) {
	x := []float64{0, 0.5, 2, 3}
	f := make([]float64, len(x))
	for i, v := range x {
		f[i] = 2*v + 1
	}
	got, err := Trapezoid(x, f)
	if err != nil {
		t.Fatalf("Trapezoid error: %v", err)
	}
	// integral of 2x+1 over [0,3] = 9 + 3
	if diff := got - 12; diff < -1e-12 || diff > 1e-12 {
		t.Fatalf("Trapezoid = %v, want 12", got)
	}
}

func TestTrapezoidNonUniformGrid(t *testing.T) {
	got, err := Trapezoid([]float64{0, 1, 4}, []float64{0, 2, 2})
	if err != nil {
		t.Fatalf("Trapezoid error: %v", err)
	}
	if got != 7 {
		t.Fatalf("Trapezoid = %v, want 7", got)
	}
}

func TestTrapezoidErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		x, f []float64
		want error
	}{
		{"mismatch", []float64{0, 1}, []float64{1}, errMismatchedLength},
		{"short", []float64{0}, []float64{1}, errTooShort},
		{"empty", nil, nil, errTooShort},
		{"unsorted", []float64{1, 0}, []float64{1, 1}, errUnsorted},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Trapezoid(tc.x, tc.f)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestWeightedTrapezoid(t *testing.T) {
	x := []float64{400, 500, 600}
	f := []float64{2, 2, 2}
	w := []float64{0, 1, 0}
	got, err := WeightedTrapezoid(x, f, w, nil)
	if err != nil {
		t.Fatalf("WeightedTrapezoid error: %v", err)
	}
	if got != 200 {
		t.Fatalf("WeightedTrapezoid = %v, want 200", got)
	}

	if _, err := WeightedTrapezoid(x, f, w[:2], nil); !errors.Is(err, errMismatchedLength) {
		t.Fatalf("err = %v, want %v", err, errMismatchedLength)
	}
}

func TestWeightedTrapezoidReusesScratch(t *testing.T) {
	x := []float64{0, 1}
	scratch := make([]float64, 0, 4)
	got, err := WeightedTrapezoid(x, []float64{1, 3}, []float64{1, 1}, scratch)
	if err != nil {
		t.Fatalf("WeightedTrapezoid error: %v", err)
	}
	if got != 2 {
		t.Fatalf("WeightedTrapezoid = %v, want 2", got)
	}
	if scratch[:2][1] != 3 {
		t.Fatalf("scratch not reused: %v", scratch[:2])
	}
}
