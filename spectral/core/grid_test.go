package core

import "testing"

func TestLinspace(t *testing.T) {
	got := Linspace(380, 730, 8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	if got[0] != 380 || got[7] != 730 {
		t.Fatalf("endpoints = %v, %v", got[0], got[7])
	}
	for i := 1; i < len(got); i++ {
		if step := got[i] - got[i-1]; !NearlyEqual(step, 50, 1e-9) {
			t.Fatalf("step %d = %v, want 50", i, step)
		}
	}
}

func TestLinspaceSmallCounts(t *testing.T) {
	if got := Linspace(380, 730, 0); got != nil {
		t.Fatalf("n=0: got %v want nil", got)
	}
	if got := Linspace(380, 730, 1); len(got) != 1 || got[0] != 380 {
		t.Fatalf("n=1: got %v want [380]", got)
	}
	if got := Linspace(380, 730, 2); len(got) != 2 || got[1] != 730 {
		t.Fatalf("n=2: got %v", got)
	}
}

func TestVisibleGrid(t *testing.T) {
	g := VisibleGrid()
	if len(g) != 81 {
		t.Fatalf("len = %d, want 81", len(g))
	}
	if g[0] != 380 || g[80] != 780 {
		t.Fatalf("endpoints = %v, %v", g[0], g[80])
	}
}

func TestGridInvalid(t *testing.T) {
	if Grid(400, 300, 5) != nil || Grid(400, 500, 0) != nil {
		t.Fatal("expected nil for invalid grid")
	}
}

func TestLinspaceEndpointExact(t *testing.T) {
	for _, n := range []int{3, 7, 99, 100, 1001} {
		got := Linspace(380, 730, n)
		if got[n-1] != 730 {
			t.Fatalf("n=%d: last = %v, want 730", n, got[n-1])
		}
	}
}
