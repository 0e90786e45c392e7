package core

import "testing"

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Min: 2, Max: 8.5, HasMin: true, HasMax: true}
	cases := map[float64]float64{1: 2, 2: 2, 5.5: 5.5, 8.5: 8.5, 9: 8.5}
	for in, want := range cases {
		if got := ctrl.Clamp(in); got != want {
			t.Fatalf("Clamp(%v) = %v, want %v", in, got, want)
		}
	}
	open := ParameterControl{}
	if got := open.Clamp(-100); got != -100 {
		t.Fatalf("unbounded control clamped to %v", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}
