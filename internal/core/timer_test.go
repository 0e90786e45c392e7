package core

import (
	"testing"
	"time"
)

func TestClockFirstDeltaIsZero(t *testing.T) {
	var c Clock
	t0 := time.Unix(10, 0)
	if got := c.Delta(t0); got != 0 {
		t.Fatalf("first delta %v, want 0", got)
	}
	if got := c.Delta(t0.Add(500 * time.Millisecond)); got != 0.5 {
		t.Fatalf("second delta %v, want 0.5", got)
	}
	if got := c.Delta(t0.Add(400 * time.Millisecond)); got >= 0 {
		t.Fatalf("clock going backwards should give a negative delta, got %v", got)
	}

	c.Reset()
	if got := c.Delta(t0.Add(time.Hour)); got != 0 {
		t.Fatalf("delta after reset %v, want 0", got)
	}
}
