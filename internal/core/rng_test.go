package core

import "testing"

func TestRNGSpread(t *testing.T) {
	a := NewRNG(3)
	b := NewRNG(3)
	for i := 0; i < 100; i++ {
		va, vb := a.Spread(0.25), b.Spread(0.25)
		if va != vb {
			t.Fatalf("same seed diverged at draw %d", i)
		}
		if va < -0.25 || va >= 0.25 {
			t.Fatalf("spread %v outside [-0.25, 0.25)", va)
		}
	}
	if got := a.Spread(0); got != 0 {
		t.Fatalf("zero spread returned %v", got)
	}
}
