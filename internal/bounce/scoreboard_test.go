package bounce

import (
	"slices"
	"testing"
)

func TestScoreboardLines(t *testing.T) {
	b := NewScoreboard(5)
	want := []string{"1: —", "2: —", "3: —", "4: —", "5: —"}
	if got := b.Lines(); !slices.Equal(got, want) {
		t.Fatalf("fresh scoreboard lines %q, want %q", got, want)
	}

	if !b.Record(1, 1.0987) || !b.Record(2, 0.164) {
		t.Fatal("expected in-range records to succeed")
	}
	if b.Record(0, 1) || b.Record(6, 1) {
		t.Fatal("expected out-of-range records to be ignored")
	}
	want = []string{"1: 1.10m", "2: 0.16m", "3: —", "4: —", "5: —"}
	if got := b.Lines(); !slices.Equal(got, want) {
		t.Fatalf("lines %q, want %q", got, want)
	}
	if h, ok := b.Height(2); !ok || h != 0.164 {
		t.Fatalf("Height(2) = %v, %v", h, ok)
	}

	b.Reset()
	if _, ok := b.Height(1); ok {
		t.Fatal("reset left a recorded height")
	}
	if got := b.Lines()[0]; got != "1: —" {
		t.Fatalf("reset line %q", got)
	}
}
